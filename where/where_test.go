package where

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anisan-cli/dvs/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestWhere(t *testing.T) {
	Convey("Given a custom config path", t, func() {
		custom := filepath.Join(os.TempDir(), "dvs-test-config")
		So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
		Reset(func() { _ = os.Unsetenv(EnvConfigPath) })

		Convey("Config returns it and creates it", func() {
			So(Config(), ShouldEqual, custom)
			ok, err := filesystem.API().DirExists(custom)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})

		Convey("Logs lives under config", func() {
			So(Logs(), ShouldEqual, filepath.Join(custom, "logs"))
		})
	})

	Convey("Socket paths live in the temp dir", t, func() {
		So(strings.HasPrefix(Socket("abc"), Temp()), ShouldBeTrue)
		So(Socket("abc"), ShouldEndWith, "abc.sock")
	})
}
