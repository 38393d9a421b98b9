package tui

import (
	"github.com/anisan-cli/dvs/affordance"
	"github.com/samber/lo"
)

// widget is the terminal rendition of an affordance control.
type widget struct {
	kind     affordance.Kind
	label    string
	selected bool
	classes  map[string]struct{}
}

func (w *widget) SetLabel(label string)     { w.label = label }
func (w *widget) SetSelected(selected bool) { w.selected = selected }
func (w *widget) AddClass(class string)     { w.classes[class] = struct{}{} }
func (w *widget) RemoveClass(class string)  { delete(w.classes, class) }

func (w *widget) has(class string) bool {
	_, ok := w.classes[class]
	return ok
}

// controlBar collects widgets in creation order and the affordances owning them.
type controlBar struct {
	widgets []*widget
	items   []affordance.Affordance
}

func (c *controlBar) NewWidget(kind affordance.Kind) affordance.Widget {
	w := &widget{kind: kind, classes: make(map[string]struct{})}
	c.widgets = append(c.widgets, w)
	return w
}

func (c *controlBar) Add(a affordance.Affordance) {
	c.items = append(c.items, a)
}

func (c *controlBar) ofKind(kinds ...affordance.Kind) []*widget {
	return lo.Filter(c.widgets, func(w *widget, _ int) bool {
		return lo.Contains(kinds, w.kind)
	})
}
