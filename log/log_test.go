package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/anisan-cli/dvs/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func TestLog(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Messages are discarded without failing", func() {
			So(func() { Infof("switch to %s", "Expanded") }, ShouldNotPanic)
		})
	})

	Convey("Given a json logger at warn level", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsJson, true)
		viper.Set(key.LogsLevel, "warn")
		Reset(func() {
			viper.Set(key.LogsJson, false)
			viper.Set(key.LogsLevel, "info")
			logger = newDiscard()
		})
		So(configure(&buf), ShouldBeNil)

		Convey("Info is filtered out", func() {
			Info("hidden")
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Fields are emitted as json", func() {
			With(logrus.Fields{"variant": "Simple"}).Warn("dropped")

			var line map[string]any
			So(json.Unmarshal(buf.Bytes(), &line), ShouldBeNil)
			So(line["variant"], ShouldEqual, "Simple")
			So(line["msg"], ShouldEqual, "dropped")
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "loud")
			So(configure(&buf), ShouldBeNil)
			So(logger.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}
