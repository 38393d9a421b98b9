package selector

import (
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/log"
	"github.com/anisan-cli/dvs/source"
	"github.com/anisan-cli/dvs/variant"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// Controller holds the authoritative current variant.
// It must be used from the single thread that handles UI and engine callbacks.
type Controller struct {
	set      *variant.Set
	engine   Engine
	bus      *event.Bus
	original []source.Descriptor
	current  mo.Option[source.Key]
}

// New creates a controller over a validated set.
func New(set *variant.Set, engine Engine, bus *event.Bus) *Controller {
	return &Controller{
		set:      set,
		engine:   engine,
		bus:      bus,
		original: engine.Sources(),
		current:  mo.None[source.Key](),
	}
}

// Variants returns the set the controller selects from.
func (c *Controller) Variants() *variant.Set {
	return c.set
}

// Current returns the selected variant. Until a switch happens it is the
// variant of the first original source, or "" when there is none.
func (c *Controller) Current() source.Key {
	if k, ok := c.current.Get(); ok {
		return k
	}
	if len(c.original) == 0 {
		return ""
	}
	return c.original[0].Key
}

// SwitchTo loads variant target. Unknown or current targets are ignored.
func (c *Controller) SwitchTo(target source.Key) {
	c.switchTo(mo.Some(target))
}

// Toggle switches to the other variant when there are exactly two.
func (c *Controller) Toggle() {
	c.switchTo(mo.None[source.Key]())
}

func (c *Controller) switchTo(target mo.Option[source.Key]) {
	from := c.Current()

	k, ok := target.Get()
	if !ok {
		if k, ok = c.set.Other(from); !ok {
			log.Debugf("toggle ignored: %d variants", c.set.Len())
			return
		}
	}

	if k == from {
		return
	}

	sources, ok := c.set.Get(k)
	if !ok {
		log.Debugf("switch ignored: unknown variant %q", k)
		return
	}

	paused, err := c.engine.Paused()
	if err != nil {
		log.Warnf("read pause state: %v", err)
		paused = true
	}

	position, err := c.engine.CurrentTime()
	if err != nil {
		log.Warnf("read playback position: %v", err)
	}

	if c.engine.Preload() == PreloadNone {
		c.engine.SetPreload(PreloadMetadata)
	}

	c.engine.OnceMetadataLoaded(func() {
		c.restore(position, paused)
	})

	if err := c.engine.SetSource(sources); err != nil {
		log.Errorf("load variant %q: %v", k, err)
	}

	c.current = mo.Some(k)

	log.With(logrus.Fields{
		"from":     string(from),
		"to":       string(k),
		"position": position,
		"paused":   paused,
	}).Info("description changed")

	c.bus.Emit(event.DescriptionChanged)
}

func (c *Controller) restore(position float64, paused bool) {
	if err := c.engine.SetCurrentTime(position); err != nil {
		log.Warnf("restore position %.2f: %v", position, err)
	}

	c.engine.MarkStarted()

	if !paused {
		if err := c.engine.Play(); err != nil {
			log.Warnf("resume playback: %v", err)
		}
	}
}

// start selects k as the startup variant without notifying anyone.
func (c *Controller) start(k source.Key) {
	sources, ok := c.set.Get(k)
	if !ok {
		return
	}

	if err := c.engine.SetSource(sources); err != nil {
		log.Errorf("load startup variant %q: %v", k, err)
	}
	c.current = mo.Some(k)
}
