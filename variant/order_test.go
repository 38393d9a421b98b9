package variant

import (
	"testing"

	"github.com/anisan-cli/dvs/source"
	. "github.com/smartystreets/goconvey/convey"
)

func keysOf(keys ...source.Key) *Set {
	var sources []source.Descriptor
	for _, k := range keys {
		sources = append(sources, mp4(string(k)+".mp4", k))
	}
	return Build(sources)
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Non-numeric keys sort before numeric ones", func() {
			So(Compare(source.Base, "3"), ShouldEqual, -1)
			So(Compare("3", "Simple"), ShouldEqual, 1)
		})

		Convey("Numeric keys sort descending", func() {
			So(Compare("10", "2"), ShouldEqual, -1)
			So(Compare("2", "10"), ShouldEqual, 1)
			So(Compare("7", "7"), ShouldEqual, 0)
		})

		Convey("Leading integers are honoured", func() {
			So(Compare("2 minutes", "10 minutes"), ShouldEqual, 1)
			So(Compare(" -1", "0"), ShouldEqual, 1)
		})

		Convey("Hex prefixes are read as hex", func() {
			So(Compare("0x1A", "20"), ShouldEqual, -1)
			So(Compare("-0x10", "-20"), ShouldEqual, -1)
			So(Compare("0x", "1"), ShouldEqual, -1)
		})

		Convey("Numbers beyond int64 stay numeric", func() {
			So(Compare("99999999999999999999", "9223372036854775807"), ShouldEqual, -1)
			So(Compare("99999999999999999999", "Simple"), ShouldEqual, 1)
		})

		Convey("Non-numeric keys tie", func() {
			So(Compare("Simple", "Expanded"), ShouldEqual, 0)
			So(Compare(source.Base, source.Described), ShouldEqual, 0)
		})
	})
}

func TestOrdered(t *testing.T) {
	Convey("Given the base and two labelled variants", t, func() {
		set := keysOf(source.Base, "Simple", "Expanded")

		Convey("Ties keep set order and the result is deterministic", func() {
			want := []source.Key{source.Base, "Simple", "Expanded"}
			for i := 0; i < 5; i++ {
				So(Ordered(set), ShouldResemble, want)
			}
		})
	})

	Convey("Given numeric labels mixed with the base", t, func() {
		set := keysOf("1", source.Base, "10", "2")

		Convey("The base comes first, then numbers descending", func() {
			So(Ordered(set), ShouldResemble, []source.Key{source.Base, "10", "2", "1"})
		})
	})
}
