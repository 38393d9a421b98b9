package tui

import (
	"github.com/anisan-cli/dvs/log"
	"github.com/anisan-cli/dvs/player"
	"github.com/anisan-cli/dvs/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case signalMsg:
		sig := player.Signal(msg)
		b.engine.Deliver(sig)
		if sig == player.SignalShutdown {
			return b, tea.Quit
		}
		return b, b.waitForSignal()
	case playerExitedMsg:
		log.Info("player exited")
		return b, tea.Quit
	case tickMsg:
		b.refresh()
		return b, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case playingState:
			return b.updatePlaying(msg)
		case menuState:
			return b.updateMenu(msg)
		case errorState:
			return b.updateError(msg)
		}
	}

	return b, nil
}

func (b *statefulBubble) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	case key.Matches(msg, b.keymap.describe):
		b.activate()
	case key.Matches(msg, b.keymap.playPause):
		err = b.engine.TogglePause()
	case key.Matches(msg, b.keymap.seekBack):
		err = b.engine.SeekBy(-seekStep)
	case key.Matches(msg, b.keymap.seekForward):
		err = b.engine.SeekBy(seekStep)
	}

	if err != nil {
		log.Error(err)
		b.raiseError(err)
		return b, nil
	}

	b.refresh()
	return b, nil
}

func (b *statefulBubble) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m, ok := b.menu()
	if !ok {
		b.setState(playingState)
		return b, nil
	}

	n := len(m.Entries())

	switch {
	case key.Matches(msg, b.keymap.up):
		b.cursor = util.Wrap(b.cursor-1, n)
	case key.Matches(msg, b.keymap.down):
		b.cursor = util.Wrap(b.cursor+1, n)
	case key.Matches(msg, b.keymap.confirm):
		b.choose()
	case key.Matches(msg, b.keymap.back, b.keymap.describe):
		b.closeMenu()
	case key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keymap.back):
		b.lastError = nil
		b.setState(playingState)
	case key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	}

	return b, nil
}
