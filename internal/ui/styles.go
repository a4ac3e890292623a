package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the editor UI
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - saved, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - failures
	WarningColor = lipgloss.Color("#FFA500") // Orange - conflicts, dirty marker
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for the editor UI
var (
	// TitleStyle is for the article title line
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			PaddingLeft(2)

	// SlugStyle is for the canonical slug shown next to the title
	SlugStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// DirtyMarkerStyle is for the unsaved-changes marker
	DirtyMarkerStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// BodyStyle is for the rendered article body in view mode
	BodyStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(1, 2)

	// FooterStyle is for the last-updated footer line
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			PaddingLeft(2)

	// StatusSavedStyle is for the post-save status flash
	StatusSavedStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// StatusErrorStyle is for failed-save status text
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// LabelStyle is for field labels in edit mode
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	// HelpStyle is for the key hint line at the bottom
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

// EditorBorderStyle returns the border style for the edit surface
func EditorBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// RenderOverlay centers dialog content on screen, dimming the backdrop.
//
// Uses lipgloss.Place() for automatic centering and overlay rendering.
// The dialog content should already be styled with borders and padding.
func RenderOverlay(content string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
