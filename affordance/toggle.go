package affordance

import (
	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/source"
)

// Toggle switches between exactly two variants.
type Toggle struct {
	switcher Switcher
	caption  string
	widget   Widget
	on       bool
}

// NewToggle creates a toggle and subscribes it to description changes on bus.
func NewToggle(sw Switcher, bus *event.Bus, caption string) *Toggle {
	t := &Toggle{switcher: sw, caption: caption}
	bus.On(event.DescriptionChanged, t.StateChanged)
	return t
}

// Render implements Affordance.
func (t *Toggle) Render(f Factory) {
	t.widget = f.NewWidget(Button)
	t.widget.AddClass(constant.ClassDescriptionButton)
	t.widget.SetLabel(t.caption)
}

// Activate switches to the other variant.
func (t *Toggle) Activate() {
	t.switcher.Toggle()
}

// StateChanged puts the toggle in "on" mode whenever a described variant is current.
func (t *Toggle) StateChanged() {
	t.on = t.switcher.Current() != source.Base
	if t.widget == nil {
		return
	}

	if t.on {
		t.widget.RemoveClass(constant.ClassNotDescribed)
		t.widget.AddClass(constant.ClassDescribed)
	} else {
		t.widget.RemoveClass(constant.ClassDescribed)
		t.widget.AddClass(constant.ClassNotDescribed)
	}
	t.widget.SetLabel(t.Label())
}

// On reports whether a described variant is current.
func (t *Toggle) On() bool {
	return t.on
}

// Label is the caption for the current mode.
func (t *Toggle) Label() string {
	if t.on {
		return t.caption + ", Described"
	}
	return t.caption + ", Not Described"
}
