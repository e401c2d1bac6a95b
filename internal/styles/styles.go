// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/termlinks/internal/core/link"
)

// Tokyo Night color palette.
var (
	ColorRed    = lipgloss.Color("#f7768e")
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorCyan   = lipgloss.Color("#7dcfff")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// TitleStyle styles view headers.
var TitleStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// MutedStyle styles secondary text such as positions and hints.
var MutedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// ErrorStyle styles failure messages.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// SuccessStyle styles confirmation messages.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

// KindStyle returns the style used to label links of kind k.
func KindStyle(k link.Kind) lipgloss.Style {
	switch k {
	case link.KindURL:
		return lipgloss.NewStyle().Foreground(ColorCyan)
	case link.KindFilePath:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return MutedStyle
	}
}

// FormTheme returns the huh theme used for prompts.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorBlue)
	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorGray)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("#1a1b26")).Background(ColorBlue)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(ColorWhite).Background(lipgloss.Color("#24283b"))

	t.Blurred.Title = t.Blurred.Title.Foreground(ColorGray)

	return t
}
