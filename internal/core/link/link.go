// Package link defines the detected link domain types.
package link

import (
	"fmt"
	"unicode/utf8"
)

// Kind identifies what a detected span refers to.
type Kind string

const (
	KindURL      Kind = "url"
	KindFilePath Kind = "file_path"
)

func (k Kind) String() string {
	return string(k)
}

// Valid returns true if k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindURL, KindFilePath:
		return true
	default:
		return false
	}
}

// Position is a 0-based (row, column) coordinate on the terminal grid.
// Columns count characters (runes), not bytes.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Before reports whether p sorts strictly before other in row-major order.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Link is a detected URL or file path. End is inclusive.
type Link struct {
	Kind  Kind     `json:"kind"`
	Start Position `json:"start"`
	End   Position `json:"end"`
	Text  string   `json:"text"`
}

// Contains returns true if (row, col) falls inside the link span.
func (l Link) Contains(row, col int) bool {
	if l.Start.Row == l.End.Row {
		return row == l.Start.Row && col >= l.Start.Col && col <= l.End.Col
	}

	switch {
	case row == l.Start.Row:
		return col >= l.Start.Col
	case row == l.End.Row:
		return col <= l.End.Col
	default:
		return row > l.Start.Row && row < l.End.Row
	}
}

// Len returns the number of characters in the matched text.
func (l Link) Len() int {
	return utf8.RuneCountInString(l.Text)
}
