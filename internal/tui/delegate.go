package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/hay-kot/termlinks/internal/styles"
)

// LinkItem wraps a detected link for the list component.
type LinkItem struct {
	Link link.Link
}

// FilterValue returns the value used for filtering.
func (i LinkItem) FilterValue() string {
	return i.Link.Text
}

// LinkDelegate handles rendering of link items in the list.
type LinkDelegate struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
}

// NewLinkDelegate creates a new link delegate with default styles.
func NewLinkDelegate() LinkDelegate {
	return LinkDelegate{
		Normal:   normalStyle,
		Selected: selectedStyle,
	}
}

// Height returns the height of each item.
func (d LinkDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d LinkDelegate) Spacing() int {
	return 0
}

// Update handles item updates.
func (d LinkDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single item: cursor, kind, span, then the link text.
func (d LinkDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(LinkItem)
	if !ok {
		return
	}

	l := li.Link
	cursor, textStyle := " ", d.Normal
	if index == m.Index() {
		cursor, textStyle = iconCursor, d.Selected
	}

	kind := styles.KindStyle(l.Kind).Render(fmt.Sprintf("%-9s", l.Kind))
	span := positionStyle.Render(fmt.Sprintf("%-11s", l.Start.String()+"-"+l.End.String()))

	text := l.Text
	if width := m.Width() - 26; width > 3 && lipgloss.Width(text) > width {
		runes := []rune(text)
		if len(runes) > width-3 {
			text = string(runes[:width-3]) + "..."
		}
	}

	_, _ = fmt.Fprintf(w, "%s %s %s %s", textStyle.Render(cursor), kind, span, textStyle.Render(text))
}
