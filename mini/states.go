package mini

import (
	"fmt"
	"strings"
	"time"

	"github.com/anisan-cli/dvs/affordance"
	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/icon"
	"github.com/anisan-cli/dvs/player"
	"github.com/anisan-cli/dvs/util"
	"github.com/samber/lo"
)

type state int

const (
	controlState state = iota + 1
	menuState
	quitState
)

const (
	seekStep    = 10
	loadTimeout = 10 * time.Second
)

type action struct {
	label string
	run   func() error
}

func (m *mini) status() string {
	if !m.engine.Started() {
		return fmt.Sprintf("%s (not started)", m.title)
	}

	pos, dur := m.engine.Position()
	glyph := icon.Get(icon.Playing)
	if paused, err := m.engine.Paused(); err == nil && paused {
		glyph = icon.Get(icon.Paused)
	}

	return strings.TrimSpace(fmt.Sprintf("%s %s %s / %s", glyph, m.title, util.FormatDuration(pos), util.FormatDuration(dur)))
}

func (m *mini) actions() []action {
	actions := []action{
		{label: "Play / Pause", run: m.engine.TogglePause},
		{label: fmt.Sprintf("Back %ds", seekStep), run: func() error { return m.engine.SeekBy(-seekStep) }},
		{label: fmt.Sprintf("Forward %ds", seekStep), run: func() error { return m.engine.SeekBy(seekStep) }},
	}

	if _, ok := m.selector.Get(); ok {
		actions = append(actions, action{label: m.selectorLabel(), run: m.activate})
	}

	return append(actions, action{label: "Quit", run: func() error {
		m.setState(quitState)
		return nil
	}})
}

// selectorLabel renders the main selector widget with its state.
func (m *mini) selectorLabel() string {
	w, ok := lo.Find(m.bar.widgets, func(w *widget) bool {
		return w.kind == affordance.Button || w.kind == affordance.MenuButton
	})
	if !ok {
		return constant.DescriptionButtonLabel
	}

	label := w.label
	if w.has(constant.ClassDescribed) {
		label = strings.TrimSpace(icon.Get(icon.Described) + " " + label)
	}
	if w.kind == affordance.MenuButton {
		label = fmt.Sprintf("%s: %s", constant.DescriptionButtonLabel, label)
	}
	return label
}

func (m *mini) handleControlState() error {
	title(constant.Dvs)

	actions := m.actions()
	i, err := choose(m.status(), lo.Map(actions, func(a action, _ int) string { return a.label }))
	if err != nil {
		return err
	}

	if err := actions[i].run(); err != nil {
		fail(err)
	}
	return nil
}

// activate clicks the selector. A toggle switches at once; a menu opens.
func (m *mini) activate() error {
	a, _ := m.selector.Get()

	before := m.controller.Current()
	a.Activate()

	if menu, ok := a.(*affordance.Menu); ok && menu.Expanded() {
		m.setState(menuState)
		return nil
	}

	if m.controller.Current() != before {
		m.awaitLoaded()
	}
	return nil
}

func (m *mini) handleMenuState() error {
	a, _ := m.selector.Get()
	menu := a.(*affordance.Menu)

	var caption string
	if t, ok := lo.Find(m.bar.widgets, func(w *widget) bool { return w.kind == affordance.MenuTitle }); ok {
		caption = t.label
	}

	items := lo.Filter(m.bar.widgets, func(w *widget, _ int) bool { return w.kind == affordance.MenuItem })
	options := lo.Map(items, func(w *widget, _ int) string {
		if w.selected {
			return strings.TrimSpace(icon.Get(icon.Selected) + " " + w.label)
		}
		return w.label
	})

	i, err := choose(caption, append(options, "Back"))
	if err != nil {
		return err
	}

	menu.Activate()
	m.setState(controlState)

	if i >= len(menu.Entries()) {
		return nil
	}

	before := m.controller.Current()
	menu.Entries()[i].Activate()
	if m.controller.Current() != before {
		m.awaitLoaded()
	}
	return nil
}

// awaitLoaded delivers player events until the new source reports it loaded,
// so the position restore happens before the next prompt.
func (m *mini) awaitLoaded() {
	timeout := time.After(loadTimeout)
	for {
		select {
		case sig := <-m.engine.Signals():
			m.engine.Deliver(sig)
			if sig == player.SignalFileLoaded {
				return
			}
			if sig == player.SignalShutdown {
				m.setState(quitState)
				return
			}
		case <-m.engine.Done():
			m.setState(quitState)
			return
		case <-timeout:
			fail(fmt.Errorf("source did not load within %s", loadTimeout))
			return
		}
	}
}
