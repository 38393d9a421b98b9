// Package event implements a synchronous named-event bus.
//
// Handlers run on the caller's goroutine, in subscription order, before Emit
// returns. The bus is meant to be owned by a single logical thread.
package event

import "github.com/samber/lo"

// Name identifies an event.
type Name string

const (
	// DescriptionChanged fires after the selected variant changed.
	DescriptionChanged Name = "description-changed"
	// MetadataLoaded fires when the engine can seek in a newly loaded source.
	MetadataLoaded Name = "metadata-loaded"
)

type handler struct {
	id   uint64
	fn   func()
	once bool
}

// Bus dispatches named events to subscribed handlers.
type Bus struct {
	next     uint64
	handlers map[Name][]handler
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[Name][]handler)}
}

func (b *Bus) add(name Name, fn func(), once bool) func() {
	b.next++
	id := b.next
	b.handlers[name] = append(b.handlers[name], handler{id: id, fn: fn, once: once})

	return func() { b.remove(name, id) }
}

func (b *Bus) remove(name Name, id uint64) {
	b.handlers[name] = lo.Reject(b.handlers[name], func(h handler, _ int) bool {
		return h.id == id
	})
}

// On subscribes fn to name. The returned func unsubscribes it.
func (b *Bus) On(name Name, fn func()) (off func()) {
	return b.add(name, fn, false)
}

// Once subscribes fn to the next emission of name only.
func (b *Bus) Once(name Name, fn func()) (off func()) {
	return b.add(name, fn, true)
}

// Emit calls every handler subscribed to name when Emit starts.
// One-shot handlers are removed before any handler runs.
func (b *Bus) Emit(name Name) {
	current := b.handlers[name]
	if len(current) == 0 {
		return
	}

	b.handlers[name] = lo.Reject(current, func(h handler, _ int) bool { return h.once })
	for _, h := range current {
		h.fn()
	}
}

// Count returns the number of handlers subscribed to name.
func (b *Bus) Count(name Name) int {
	return len(b.handlers[name])
}
