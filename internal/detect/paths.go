package detect

import (
	"strings"
	"unicode"

	"github.com/hay-kot/termlinks/internal/core/link"
)

// ignoredPaths are device and pseudo-filesystem paths that show up in
// command output all the time but are never worth opening. A candidate is
// dropped when it starts with any of them.
var ignoredPaths = []string{
	"/dev/null",
	"/dev/zero",
	"/dev/random",
	"/dev/urandom",
	"/dev/stdin",
	"/dev/stdout",
	"/dev/stderr",
	"/dev/tty",
	"/dev/fd",
	"/proc/",
	"/sys/",
}

// minTrimmedLen is the shortest a candidate may become while trailing
// punctuation is removed.
const minTrimmedLen = 2

// ScanPaths returns every absolute ("/...") or home-relative ("~/...") path
// in rows, row by row and left to right.
func ScanPaths(rows []string) []link.Link {
	var links []link.Link
	for row, text := range rows {
		links = scanPathRow(links, row, []rune(text))
	}
	return links
}

func scanPathRow(links []link.Link, row int, chars []rune) []link.Link {
	i := 0
	for i < len(chars) {
		prefix := pathPrefixLen(chars, i)
		if prefix == 0 || (i > 0 && !isPathDelimiter(chars[i-1])) {
			i++
			continue
		}

		end := i + prefix
		nested := false
		for end < len(chars) && isPathChar(chars[end]) {
			if chars[end] == '/' {
				nested = true
			}
			end++
		}

		trimmed := end
		for trimmed-i > minTrimmedLen && isTrailingPunct(chars[trimmed-1]) {
			trimmed--
		}

		text := string(chars[i:trimmed])
		if acceptPath(text, trimmed-i, nested) {
			links = append(links, link.Link{
				Kind:  link.KindFilePath,
				Start: link.Position{Row: row, Col: i},
				End:   link.Position{Row: row, Col: trimmed - 1},
				Text:  text,
			})
		}

		// Nothing inside the consumed run can start a path: every rune in it
		// is a path rune, and path runes are never delimiters.
		i = end
	}
	return links
}

// pathPrefixLen returns 1 for "/", 2 for "~/" and 0 when no path starts at i.
func pathPrefixLen(chars []rune, i int) int {
	switch chars[i] {
	case '/':
		return 1
	case '~':
		if i+1 < len(chars) && chars[i+1] == '/' {
			return 2
		}
	}
	return 0
}

func acceptPath(text string, length int, nested bool) bool {
	if text == "/" || text == "~/" {
		return false
	}

	if text[0] == '/' && !nested && length < 3 {
		return false
	}

	for _, p := range ignoredPaths {
		if strings.HasPrefix(text, p) {
			return false
		}
	}

	return true
}

func isPathDelimiter(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '"', '\'', '(', '[', '{', '<', '`', ';', '|', '&':
		return true
	}
	return false
}

// isPathChar accepts combining marks so names in scripts such as Devanagari
// are not cut at their vowel signs.
func isPathChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) {
		return true
	}
	switch r {
	case '/', '.', '_', '-', '+', '@', ':', ',', '=', '%':
		return true
	}
	return false
}

func isTrailingPunct(r rune) bool {
	switch r {
	case '.', ',', ':', ';':
		return true
	}
	return false
}
