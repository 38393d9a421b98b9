package tui

import (
	"github.com/anisan-cli/dvs/affordance"
	"github.com/anisan-cli/dvs/color"
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/player"
	"github.com/anisan-cli/dvs/selector"
	"github.com/anisan-cli/dvs/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
)

const seekStep = 10

// statefulBubble is the application model: the player status, the control bar
// and the description selector it hosts.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	helpC    help.Model

	engine     *player.Engine
	bus        *event.Bus
	bar        *controlBar
	controller *selector.Controller
	selector   mo.Option[affordance.Affordance]

	// cursor indexes the menu entries while the menu is open
	cursor int

	title, poster      string
	position, duration float64
	paused             bool
	lastError          error

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

// menu returns the selector when it is a menu.
func (b *statefulBubble) menu() (*affordance.Menu, bool) {
	a, ok := b.selector.Get()
	if !ok {
		return nil, false
	}
	m, ok := a.(*affordance.Menu)
	return m, ok
}

// newBubble builds the model and runs the selector setup against the engine.
// The engine is expected not to be started yet so the startup variant is the
// one that gets opened.
func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:  newStatefulKeymap(),
		engine:  options.Engine,
		bus:     event.New(),
		bar:     &controlBar{},
		paused:  true,
		options: options,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Mauve)

	if options.Manifest != nil {
		bubble.title = options.Manifest.Title
		bubble.poster = options.Manifest.Poster
	}

	if c, a, ok := selector.Setup(options.Engine, bubble.bus, bubble.bar, options.Selector); ok {
		bubble.controller = c
		bubble.selector = mo.Some(a)
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(playingState)
	return &bubble
}
