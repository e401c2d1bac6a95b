package detect

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/rs/zerolog"
)

// Detector holds the links found by the most recent scan.
//
// A Detector has a single owner. Scan, LinkAt, Links and Clear must not be
// called concurrently; callers that share one across goroutines serialize
// access themselves.
type Detector struct {
	links      []link.Link
	generation uint64
	ignore     []string
	log        zerolog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithIgnore drops file path links whose text matches any of the given
// doublestar patterns (e.g. "/tmp/**"). URLs are never filtered.
func WithIgnore(patterns ...string) Option {
	return func(d *Detector) {
		d.ignore = append(d.ignore, patterns...)
	}
}

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Detector) {
		d.log = log
	}
}

// New creates an empty Detector at generation 0.
func New(opts ...Option) *Detector {
	d := &Detector{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Scan replaces the current links with the URLs and then the file paths
// found in rows, and advances the generation. Scanning empty input still
// advances the generation.
func (d *Detector) Scan(rows []string) {
	urls := ScanURLs(rows)
	paths := ScanPaths(rows)

	links := make([]link.Link, 0, len(urls)+len(paths))
	links = append(links, urls...)
	for _, l := range paths {
		if d.ignored(l) {
			continue
		}
		links = append(links, l)
	}

	d.links = links
	d.generation++

	d.log.Debug().
		Int("rows", len(rows)).
		Int("urls", len(urls)).
		Int("paths", len(links)-len(urls)).
		Uint64("generation", d.generation).
		Msg("scanned rows")
}

// LinkAt returns the first link, in scan order, that covers (row, col).
func (d *Detector) LinkAt(row, col int) (link.Link, bool) {
	for _, l := range d.links {
		if l.Contains(row, col) {
			return l, true
		}
	}
	return link.Link{}, false
}

// Links returns a copy of the links from the last scan.
func (d *Detector) Links() []link.Link {
	return slices.Clone(d.links)
}

// Generation returns the number of scans performed so far.
func (d *Detector) Generation() uint64 {
	return d.generation
}

// Clear drops all links without scanning. The generation is unchanged.
func (d *Detector) Clear() {
	d.links = nil
}

func (d *Detector) ignored(l link.Link) bool {
	for _, pattern := range d.ignore {
		// Patterns are validated when the config loads, so a bad one here
		// simply never matches.
		if ok, _ := doublestar.Match(pattern, l.Text); ok {
			return true
		}
	}
	return false
}
