// Package affordance maps the selected variant onto a UI control: a toggle
// button for two variants or a menu for three and more.
//
// The host component framework is injected through Factory and ControlBar;
// affordances only hold the widgets it hands out.
package affordance

import "github.com/anisan-cli/dvs/source"

// Kind selects the widget flavour requested from the host.
type Kind int

const (
	Button Kind = iota + 1
	MenuButton
	MenuItem
	MenuTitle
)

// Widget is the rendering capability the host framework provides for one control.
type Widget interface {
	SetLabel(label string)
	SetSelected(selected bool)
	AddClass(class string)
	RemoveClass(class string)
}

// Factory builds host widgets.
type Factory interface {
	NewWidget(kind Kind) Widget
}

// ControlBar is the host container affordances are added to.
type ControlBar interface {
	Factory
	Add(a Affordance)
}

// Switcher is the part of the selection controller affordances drive.
type Switcher interface {
	Current() source.Key
	SwitchTo(target source.Key)
	Toggle()
}

// Affordance is the capability set shared by the toggle and the menu.
type Affordance interface {
	// Render asks the factory for the widgets of the affordance.
	Render(f Factory)
	// Activate handles a click on the main control.
	Activate()
	// StateChanged resynchronizes widgets with the current variant.
	StateChanged()
}
