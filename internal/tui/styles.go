// Package tui implements the Bubble Tea link picker.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/termlinks/internal/styles"
)

// Styles used for rendering the picker.
var (
	// Title style for the header.
	titleStyle = styles.TitleStyle.PaddingLeft(1)

	// Header details such as the source name and generation.
	headerInfoStyle = styles.MutedStyle

	// Selected item style.
	selectedStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue).
			Bold(true)

	// Normal item style (no color, uses terminal default).
	normalStyle = lipgloss.NewStyle()

	// Position style for subtle row:col text.
	positionStyle = styles.MutedStyle

	// Status line styles.
	statusStyle      = styles.SuccessStyle.PaddingLeft(1)
	statusErrorStyle = styles.ErrorStyle.PaddingLeft(1)
	emptyStyle       = styles.MutedStyle.PaddingLeft(2)

	// Help text style.
	helpStyle = styles.MutedStyle
)

// Icons and symbols.
const (
	iconCursor = ">"
	iconDot    = "•"
)
