// Package detect finds URLs and file paths in rows of terminal text and
// resolves grid coordinates to the links under them.
package detect

import (
	"regexp"
	"unicode/utf8"

	"github.com/hay-kot/termlinks/internal/core/link"
	"mvdan.cc/xurls/v2"
)

// urlSchemes only accepts schemes followed by "://". Schemes without an
// authority (mailto:, tel:, ...) are not treated as links.
const urlSchemes = `[a-zA-Z][a-zA-Z0-9.\-+]*://`

var urlPattern = mustStrict(urlSchemes)

func mustStrict(schemes string) *regexp.Regexp {
	re, err := xurls.StrictMatchingScheme(schemes)
	if err != nil {
		panic(err)
	}
	return re
}

// ScanURLs returns every URL in rows, row by row and left to right.
func ScanURLs(rows []string) []link.Link {
	var links []link.Link

	for row, text := range rows {
		matches := urlPattern.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}

		idx := runeIndexer{text: text}
		for _, m := range matches {
			start := idx.at(m[0])
			end := idx.at(m[1])

			links = append(links, link.Link{
				Kind:  link.KindURL,
				Start: link.Position{Row: row, Col: start},
				End:   link.Position{Row: row, Col: end - 1},
				Text:  text[m[0]:m[1]],
			})
		}
	}

	return links
}

// runeIndexer converts increasing byte offsets into rune offsets without
// rescanning the row from the beginning each time.
type runeIndexer struct {
	text  string
	bytes int
	runes int
}

func (r *runeIndexer) at(offset int) int {
	if offset < r.bytes {
		r.bytes, r.runes = 0, 0
	}
	r.runes += utf8.RuneCountInString(r.text[r.bytes:offset])
	r.bytes = offset
	return r.runes
}
