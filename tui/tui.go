// Package tui hosts the player controls and the description selector in a terminal UI.
package tui

import (
	"github.com/anisan-cli/dvs/manifest"
	"github.com/anisan-cli/dvs/player"
	"github.com/anisan-cli/dvs/selector"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Manifest *manifest.Manifest
	Engine   *player.Engine
	Selector selector.Options
}

// Run sets up the selector, starts the player and runs the Bubble Tea loop until
// the user quits or the player exits.
func Run(options *Options) error {
	bubble := newBubble(options)

	if err := options.Engine.Start(); err != nil {
		return err
	}
	defer options.Engine.Close()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
