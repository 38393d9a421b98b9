// Package color holds the terminal palette.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Catppuccin accents used by the control bar.
var (
	Text    = New("#cdd6f4")
	Overlay = New("#6c7086")
	Surface = New("#313244")
	Mauve   = New("#cba6f7")
	Peach   = New("#fab387")
	Teal    = New("#94e2d5")
)
