package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 2
	statusHeight = 1
)

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()

	var body string
	switch {
	case !m.loaded:
		body = emptyStyle.Render("reading " + m.source.Name() + "...")
	case len(m.list.Items()) == 0:
		body = emptyStyle.Render("no links found")
	default:
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatus())
}

func (m Model) renderHeader() string {
	info := headerInfoStyle.Render(fmt.Sprintf("%s %s %d links %s scan %d",
		m.source.Name(),
		iconDot,
		len(m.list.Items()),
		iconDot,
		m.detector.Generation(),
	))
	return titleStyle.Render("termlinks") + " " + info + "\n"
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return statusErrorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
