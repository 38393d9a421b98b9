package variant

import (
	"testing"

	"github.com/anisan-cli/dvs/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFilterByRequiredTypes(t *testing.T) {
	required := []string{"video/mp4", "video/webm"}

	Convey("Given a variant lacking a webm source", t, func() {
		set := Build([]source.Descriptor{
			mp4("a.mp4", source.Base),
			webm("a.webm", source.Base),
			mp4("b.mp4", "Expanded"),
			mp4("c.mp4", "Simple"),
			webm("c.webm", "Simple"),
		})

		filtered := FilterByRequiredTypes(set, required)

		Convey("It is excluded even though it has mp4", func() {
			So(filtered.Has("Expanded"), ShouldBeFalse)
			So(filtered.Keys(), ShouldResemble, []source.Key{source.Base, "Simple"})
			So(filtered.Len(), ShouldEqual, 2)
		})

		Convey("The input set is left alone", func() {
			So(set.Len(), ShouldEqual, 3)
		})

		Convey("Filtering again yields the same set", func() {
			again := FilterByRequiredTypes(filtered, required)
			So(again.Keys(), ShouldResemble, filtered.Keys())
			So(again.Sources(), ShouldResemble, filtered.Sources())
		})

		Convey("Missing reports what was lacking", func() {
			So(Missing(set, "Expanded", required), ShouldResemble, []string{"video/webm"})
		})
	})

	Convey("Given duplicate sources of a single required type", t, func() {
		set := Build([]source.Descriptor{
			mp4("a.mp4", source.Base),
			mp4("a2.mp4", source.Base),
			mp4("b.mp4", "Expanded"),
			webm("b.webm", "Expanded"),
		})

		Convey("Duplicates do not count twice", func() {
			filtered := FilterByRequiredTypes(set, required)
			So(filtered.Keys(), ShouldResemble, []source.Key{"Expanded"})
			So(filtered.Len(), ShouldEqual, 1)
		})
	})

	Convey("Given no requirement", t, func() {
		set := Build([]source.Descriptor{mp4("a.mp4", source.Base)})

		Convey("The input is returned unchanged", func() {
			So(FilterByRequiredTypes(set, nil), ShouldEqual, set)
			So(FilterByRequiredTypes(set, []string{}), ShouldEqual, set)
		})
	})
}
