package affordance

import (
	"testing"

	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMenu(t *testing.T) {
	Convey("Given a menu over three variants", t, func() {
		bus := event.New()
		sw := newSwitcher(bus, source.Base, "Simple", "Expanded")
		factory := &fakeFactory{}

		menu := NewMenu(sw, bus, sw.set, "Described Video")
		menu.Render(factory)
		bus.Emit(event.DescriptionChanged)

		entry := func(k source.Key) *MenuEntry {
			e, _ := lo.Find(menu.Entries(), func(e *MenuEntry) bool { return e.Key() == k })
			return e
		}

		Convey("It renders a button, a title and one item per variant", func() {
			So(factory.ofKind(MenuButton), ShouldHaveLength, 1)
			So(factory.ofKind(MenuItem), ShouldHaveLength, 3)

			title := factory.ofKind(MenuTitle)[0]
			So(title.label, ShouldEqual, "Described Video")
			So(title.classes[constant.ClassMenuTitle], ShouldBeTrue)
		})

		Convey("Entries are ordered with the base first", func() {
			keys := lo.Map(menu.Entries(), func(e *MenuEntry, _ int) source.Key { return e.Key() })
			So(keys, ShouldResemble, []source.Key{source.Base, "Simple", "Expanded"})

			labels := lo.Map(factory.ofKind(MenuItem), func(w *fakeWidget, _ int) string { return w.label })
			So(labels, ShouldResemble, []string{"Off", "Simple", "Expanded"})
		})

		Convey("The current variant is selected and labels the button", func() {
			So(entry(source.Base).Selected(), ShouldBeTrue)
			So(entry("Simple").Selected(), ShouldBeFalse)
			So(factory.ofKind(MenuButton)[0].label, ShouldEqual, "Off")
		})

		Convey("When an entry is clicked", func() {
			entry("Simple").Activate()

			Convey("Selection and button label follow", func() {
				So(sw.Current(), ShouldEqual, source.Key("Simple"))
				So(entry("Simple").Selected(), ShouldBeTrue)
				So(entry(source.Base).Selected(), ShouldBeFalse)
				So(factory.ofKind(MenuItem)[1].selected, ShouldBeTrue)
				So(factory.ofKind(MenuButton)[0].label, ShouldEqual, "Simple")
			})

			Convey("A rapid second click does not switch again", func() {
				entry("Simple").Activate()
				So(sw.switches, ShouldResemble, []source.Key{"Simple"})
			})

			Convey("After the next notification the guard is reset", func() {
				entry("Expanded").Activate()
				entry("Simple").Activate()
				So(sw.switches, ShouldResemble, []source.Key{"Simple", "Expanded", "Simple"})
				So(sw.Current(), ShouldEqual, source.Key("Simple"))
			})
		})

		Convey("Clicking the current entry switches nothing and holds its guard", func() {
			entry(source.Base).Activate()
			entry(source.Base).Activate()
			So(sw.switches, ShouldResemble, []source.Key{source.Base})
			So(sw.Current(), ShouldEqual, source.Base)

			Convey("Until another switch notifies", func() {
				entry("Simple").Activate()
				entry(source.Base).Activate()
				So(sw.switches, ShouldResemble, []source.Key{source.Base, "Simple", source.Base})
				So(sw.Current(), ShouldEqual, source.Base)
			})
		})

		Convey("Activating the menu button opens and closes it", func() {
			So(menu.Expanded(), ShouldBeFalse)
			menu.Activate()
			So(menu.Expanded(), ShouldBeTrue)
			menu.Activate()
			So(menu.Expanded(), ShouldBeFalse)
		})
	})

	Convey("Given a menu whose current variant is unknown", t, func() {
		bus := event.New()
		sw := newSwitcher(bus, "1", "2", "3")
		sw.current = ""
		menu := NewMenu(sw, bus, sw.set, "Described Video")

		Convey("The caption is used as the label", func() {
			So(menu.Label(), ShouldEqual, "Described Video")
		})

		Convey("Numeric variants are listed in descending order", func() {
			keys := lo.Map(menu.Entries(), func(e *MenuEntry, _ int) source.Key { return e.Key() })
			So(keys, ShouldResemble, []source.Key{"3", "2", "1"})
		})
	})
}
