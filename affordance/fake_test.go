package affordance

import (
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/source"
	"github.com/anisan-cli/dvs/variant"
)

type fakeWidget struct {
	kind     Kind
	label    string
	selected bool
	classes  map[string]bool
}

func (w *fakeWidget) SetLabel(label string)     { w.label = label }
func (w *fakeWidget) SetSelected(selected bool) { w.selected = selected }
func (w *fakeWidget) AddClass(class string)     { w.classes[class] = true }
func (w *fakeWidget) RemoveClass(class string)  { delete(w.classes, class) }

type fakeFactory struct {
	widgets []*fakeWidget
}

func (f *fakeFactory) NewWidget(kind Kind) Widget {
	w := &fakeWidget{kind: kind, classes: make(map[string]bool)}
	f.widgets = append(f.widgets, w)
	return w
}

func (f *fakeFactory) ofKind(kind Kind) []*fakeWidget {
	var out []*fakeWidget
	for _, w := range f.widgets {
		if w.kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// fakeSwitcher mimics the controller: switches are synchronous and notify the bus.
type fakeSwitcher struct {
	set      *variant.Set
	bus      *event.Bus
	current  source.Key
	switches []source.Key
}

func (s *fakeSwitcher) Current() source.Key { return s.current }

func (s *fakeSwitcher) SwitchTo(target source.Key) {
	s.switches = append(s.switches, target)
	if target == s.current || !s.set.Has(target) {
		return
	}
	s.current = target
	s.bus.Emit(event.DescriptionChanged)
}

func (s *fakeSwitcher) Toggle() {
	if other, ok := s.set.Other(s.current); ok {
		s.SwitchTo(other)
	}
}

func newSwitcher(bus *event.Bus, keys ...source.Key) *fakeSwitcher {
	var sources []source.Descriptor
	for _, k := range keys {
		sources = append(sources, source.Descriptor{URL: string(k) + ".mp4", Type: "video/mp4", Key: k})
	}
	return &fakeSwitcher{set: variant.Build(sources), bus: bus, current: keys[0]}
}
