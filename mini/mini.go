// Package mini implements a prompt-driven host for the player and the description selector.
package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/dvs/affordance"
	"github.com/anisan-cli/dvs/color"
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/icon"
	"github.com/anisan-cli/dvs/manifest"
	"github.com/anisan-cli/dvs/player"
	"github.com/anisan-cli/dvs/selector"
	"github.com/anisan-cli/dvs/style"
	"github.com/anisan-cli/dvs/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var truncateAt = 100

// ask is swapped in tests.
var ask = func(p survey.Prompt, response any) error {
	return survey.AskOne(p, response)
}

type Options struct {
	Manifest *manifest.Manifest
	Engine   *player.Engine
	Selector selector.Options
}

type mini struct {
	state state

	engine     *player.Engine
	bus        *event.Bus
	bar        *controlBar
	controller *selector.Controller
	selector   mo.Option[affordance.Affordance]

	title string
}

func newMini(options *Options) *mini {
	m := &mini{
		state:  controlState,
		engine: options.Engine,
		bus:    event.New(),
		bar:    &controlBar{},
	}

	if options.Manifest != nil {
		m.title = options.Manifest.Title
	}

	if c, a, ok := selector.Setup(options.Engine, m.bus, m.bar, options.Selector); ok {
		m.controller = c
		m.selector = mo.Some(a)
	}

	return m
}

func (m *mini) setState(s state) {
	m.state = s
}

// Run sets up the selector, starts the player and prompts until the user quits
// or the player exits.
func Run(options *Options) error {
	m := newMini(options)

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	if err := options.Engine.Start(); err != nil {
		return err
	}
	defer options.Engine.Close()

	return m.loop()
}

func (m *mini) loop() error {
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}
	return nil
}

func (m *mini) handleState() error {
	select {
	case <-m.engine.Done():
		m.setState(quitState)
		return nil
	default:
	}

	m.drain()

	switch m.state {
	case controlState:
		return m.handleControlState()
	case menuState:
		return m.handleMenuState()
	}

	return nil
}

// drain delivers every queued player event on the prompt loop.
func (m *mini) drain() {
	for {
		select {
		case sig := <-m.engine.Signals():
			m.engine.Deliver(sig)
			if sig == player.SignalShutdown {
				m.setState(quitState)
			}
		default:
			return
		}
	}
}

func title(s string) {
	fmt.Println(style.Title(s))
}

func fail(err error) {
	fmt.Println(icon.Get(icon.Fail) + " " + style.Fg(color.Red)(err.Error()))
}

func truncate(s string) string {
	if truncateAt <= 0 || len(s) <= truncateAt {
		return s
	}
	return s[:truncateAt-1] + "…"
}

// choose shows a select prompt and returns the index of the chosen option.
func choose(message string, options []string) (int, error) {
	var index int
	err := ask(&survey.Select{
		Message:  truncate(message),
		Options:  lo.Map(options, func(o string, _ int) string { return truncate(o) }),
		PageSize: len(options),
	}, &index)
	return index, err
}
