package tui

import (
	"time"

	"github.com/anisan-cli/dvs/player"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	signalMsg       player.Signal
	playerExitedMsg struct{}
	tickMsg         struct{}
)

const tickInterval = 500 * time.Millisecond

// waitForSignal hands the next player event to Update, which delivers it on
// the program's goroutine.
func (b *statefulBubble) waitForSignal() tea.Cmd {
	return func() tea.Msg {
		return signalMsg(<-b.engine.Signals())
	}
}

func (b *statefulBubble) waitForExit() tea.Cmd {
	return func() tea.Msg {
		<-b.engine.Done()
		return playerExitedMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// refresh polls the player for position and pause state.
func (b *statefulBubble) refresh() {
	b.position, b.duration = b.engine.Position()
	if paused, err := b.engine.Paused(); err == nil {
		b.paused = paused
	}
}

// activate clicks the selector's main control. A menu opens for navigation.
func (b *statefulBubble) activate() {
	a, ok := b.selector.Get()
	if !ok {
		return
	}

	a.Activate()

	m, ok := b.menu()
	if !ok || !m.Expanded() {
		return
	}

	b.cursor = 0
	for i, e := range m.Entries() {
		if e.Selected() {
			b.cursor = i
			break
		}
	}
	b.setState(menuState)
}

// closeMenu collapses the menu and returns to the player.
func (b *statefulBubble) closeMenu() {
	if m, ok := b.menu(); ok && m.Expanded() {
		m.Activate()
	}
	b.setState(playingState)
}

// choose activates the menu entry under the cursor.
func (b *statefulBubble) choose() {
	m, ok := b.menu()
	if !ok {
		return
	}

	entries := m.Entries()
	if b.cursor < len(entries) {
		entries[b.cursor].Activate()
	}
	b.closeMenu()
}
