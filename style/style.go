// Package style provides a functional API for composing lipgloss-based styles.
package style

import (
	"github.com/anisan-cli/dvs/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer applying a foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a padded banner in error colors.
var ErrorTitle = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.Red).Padding(0, 1).Render(s)
}

// Control bar styles.
var (
	Button         = New().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(color.Surface).Foreground(color.Text)
	ButtonFocused  = Button.BorderForeground(color.Mauve)
	Described      = New().Foreground(color.Teal).Bold(true)
	NotDescribed   = New().Foreground(color.Overlay)
	MenuTitle      = New().Foreground(color.Peach).Bold(true).Underline(true)
	MenuItem       = New().PaddingLeft(2).Foreground(color.Text)
	MenuItemActive = MenuItem.Foreground(color.Mauve).Bold(true)
)
