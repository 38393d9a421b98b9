package affordance

import (
	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/source"
	"github.com/anisan-cli/dvs/variant"
	"github.com/samber/lo"
)

// Menu lists three or more variants under a title entry.
type Menu struct {
	switcher Switcher
	caption  string
	button   Widget
	title    Widget
	entries  []*MenuEntry
	expanded bool
}

// NewMenu creates one entry per variant of set, ordered with variant.Compare.
func NewMenu(sw Switcher, bus *event.Bus, set *variant.Set, caption string) *Menu {
	m := &Menu{switcher: sw, caption: caption}
	m.entries = lo.Map(variant.Ordered(set), func(k source.Key, _ int) *MenuEntry {
		return newMenuEntry(sw, bus, k)
	})
	bus.On(event.DescriptionChanged, m.StateChanged)
	return m
}

// Render implements Affordance.
func (m *Menu) Render(f Factory) {
	m.button = f.NewWidget(MenuButton)
	m.button.AddClass(constant.ClassDescriptionButton)
	m.button.SetLabel(m.Label())

	m.title = f.NewWidget(MenuTitle)
	m.title.AddClass(constant.ClassMenuTitle)
	m.title.SetLabel(m.caption)

	for _, e := range m.entries {
		e.render(f)
	}
}

// Activate opens or closes the menu.
func (m *Menu) Activate() {
	m.expanded = !m.expanded
}

// Expanded reports whether the entries are shown.
func (m *Menu) Expanded() bool {
	return m.expanded
}

// StateChanged relabels the menu button after the current variant.
func (m *Menu) StateChanged() {
	if m.button != nil {
		m.button.SetLabel(m.Label())
	}
}

// Label is the current variant's label, or the caption when there is none.
func (m *Menu) Label() string {
	if current := m.switcher.Current(); current != "" {
		return current.Label()
	}
	return m.caption
}

// Entries returns the variant entries in display order. The title is not included.
func (m *Menu) Entries() []*MenuEntry {
	return m.entries
}

// MenuEntry selects one variant.
type MenuEntry struct {
	key      source.Key
	switcher Switcher
	widget   Widget
	selected bool
	// inFlight drops repeated activations until the next state change.
	inFlight bool
}

func newMenuEntry(sw Switcher, bus *event.Bus, k source.Key) *MenuEntry {
	e := &MenuEntry{key: k, switcher: sw}
	e.selected = k == sw.Current()
	bus.On(event.DescriptionChanged, e.StateChanged)
	return e
}

func (e *MenuEntry) render(f Factory) {
	e.widget = f.NewWidget(MenuItem)
	e.widget.SetLabel(e.key.Label())
	e.widget.SetSelected(e.selected)
}

// Key returns the variant of the entry.
func (e *MenuEntry) Key() source.Key {
	return e.key
}

// Selected reports whether the entry is the current variant.
func (e *MenuEntry) Selected() bool {
	return e.selected
}

// Activate switches to the entry's variant, at most once per state change.
func (e *MenuEntry) Activate() {
	if e.inFlight {
		return
	}
	e.switcher.SwitchTo(e.key)
	// Set after the switch: the notification it emits must not clear the guard
	// of the activation that caused it.
	e.inFlight = true
}

// StateChanged recomputes selection and clears the in-flight guard.
func (e *MenuEntry) StateChanged() {
	e.selected = e.key == e.switcher.Current()
	e.inFlight = false
	if e.widget != nil {
		e.widget.SetSelected(e.selected)
	}
}
