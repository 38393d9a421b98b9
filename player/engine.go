package player

import (
	"errors"
	"fmt"

	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/log"
	"github.com/anisan-cli/dvs/selector"
	"github.com/anisan-cli/dvs/source"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Signal is a player event name forwarded to the host thread.
type Signal string

const (
	SignalFileLoaded Signal = "file-loaded"
	SignalEndFile    Signal = "end-file"
	SignalShutdown   Signal = "shutdown"
)

const signalBuffer = 32

// ErrNoSources is returned when an engine is asked to play an empty source list.
var ErrNoSources = errors.New("no sources")

// Engine adapts a Backend to selector.Engine.
//
// Backend events arrive on the backend's listener goroutine and are queued on
// Signals. The host passes each one to Deliver from its own thread, so every
// selector callback runs on that thread.
type Engine struct {
	backend  Backend
	title    string
	original []source.Descriptor
	current  []source.Descriptor
	preload  selector.Preload
	started  bool
	bus      *event.Bus
	signals  chan Signal
}

// NewEngine creates an engine for sources. The backend is not started.
func NewEngine(backend Backend, title string, sources []source.Descriptor, preload selector.Preload) *Engine {
	return &Engine{
		backend:  backend,
		title:    title,
		original: sources,
		current:  sources,
		preload:  preload,
		bus:      event.New(),
		signals:  make(chan Signal, signalBuffer),
	}
}

// Start opens the backend on the current source list and begins listening.
func (e *Engine) Start() error {
	if len(e.current) == 0 {
		return ErrNoSources
	}

	if err := e.backend.Open(e.current[0].URL, e.title); err != nil {
		return fmt.Errorf("open player: %w", err)
	}

	return e.backend.Listen(e.forward)
}

func (e *Engine) forward(name string) {
	select {
	case e.signals <- Signal(name):
	default:
		log.Warnf("dropping player event %s: host is not keeping up", name)
	}
}

// Signals returns the queue of backend events awaiting Deliver.
func (e *Engine) Signals() <-chan Signal {
	return e.signals
}

// Done is closed when the backend exits.
func (e *Engine) Done() <-chan struct{} {
	return e.backend.Wait()
}

// Deliver handles a backend event on the caller's thread.
func (e *Engine) Deliver(sig Signal) {
	log.Debugf("player event %s", sig)

	if sig != SignalFileLoaded {
		return
	}

	if e.preload == selector.PreloadNone {
		return
	}

	e.bus.Emit(event.MetadataLoaded)
}

// discardLoaded drops file-loaded signals still queued from earlier loads, so
// the next one delivered belongs to the load about to be issued. Other
// signals are queued again in order.
func (e *Engine) discardLoaded() {
	var kept []Signal

drain:
	for {
		select {
		case sig := <-e.signals:
			if sig == SignalFileLoaded {
				log.Debugf("discarding stale %s", sig)
				continue
			}
			kept = append(kept, sig)
		default:
			break drain
		}
	}

	lo.ForEach(kept, func(sig Signal, _ int) { e.forward(string(sig)) })
}

// Sources returns the list the engine was created with.
func (e *Engine) Sources() []source.Descriptor {
	return e.original
}

// Current returns the source list that was last loaded.
func (e *Engine) Current() []source.Descriptor {
	return e.current
}

// SetSource records sources and loads the first one when the backend runs.
func (e *Engine) SetSource(sources []source.Descriptor) error {
	if len(sources) == 0 {
		return ErrNoSources
	}

	e.current = sources
	if !e.backend.Running() {
		return nil
	}

	urls := lo.Map(sources, func(d source.Descriptor, _ int) string { return d.URL })
	log.With(logrus.Fields{"urls": urls}).Info("loading source")

	e.discardLoaded()
	if err := e.backend.Load(sources[0].URL); err != nil {
		return fmt.Errorf("load %s: %w", sources[0].URL, err)
	}
	return nil
}

func (e *Engine) CurrentTime() (float64, error) {
	return e.backend.TimePos()
}

func (e *Engine) SetCurrentTime(seconds float64) error {
	return e.backend.Seek(seconds)
}

func (e *Engine) Paused() (bool, error) {
	return e.backend.Paused()
}

func (e *Engine) Play() error {
	return e.backend.SetPaused(false)
}

func (e *Engine) Preload() selector.Preload {
	return e.preload
}

func (e *Engine) SetPreload(p selector.Preload) {
	e.preload = p
}

func (e *Engine) MarkStarted() {
	e.started = true
}

// Started reports whether playback was ever started.
func (e *Engine) Started() bool {
	return e.started
}

func (e *Engine) OnceMetadataLoaded(fn func()) {
	e.bus.Once(event.MetadataLoaded, fn)
}

// TogglePause flips the pause state. Unpausing marks the engine started.
func (e *Engine) TogglePause() error {
	paused, err := e.backend.Paused()
	if err != nil {
		return err
	}

	if paused {
		e.MarkStarted()
		return e.Play()
	}
	return e.backend.SetPaused(true)
}

// SeekBy moves the position by delta seconds, never before zero.
func (e *Engine) SeekBy(delta float64) error {
	pos, err := e.backend.TimePos()
	if err != nil {
		return err
	}
	return e.backend.Seek(lo.Max([]float64{pos + delta, 0}))
}

// Position returns the current position and duration, zero when unknown.
func (e *Engine) Position() (pos, duration float64) {
	pos, _ = e.backend.TimePos()
	duration, _ = e.backend.Duration()
	return
}

// Close shuts the backend down.
func (e *Engine) Close() error {
	return e.backend.Close()
}
