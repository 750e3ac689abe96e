package qsym

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given no configuration source", t, func() {
		cfg, err := LoadConfig("")
		So(err, ShouldBeNil)

		Convey("Then the defaults apply", func() {
			So(cfg, ShouldResemble, NewConfig())
		})
	})

	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "qsym.yaml")
		So(os.WriteFile(path, []byte("input_prefix: x_\nverbose: true\n"), 0o644), ShouldBeNil)

		cfg, err := LoadConfig(path)
		So(err, ShouldBeNil)

		Convey("Then its values override the defaults", func() {
			So(cfg.InputPrefix, ShouldEqual, "x_")
			So(cfg.Verbose, ShouldBeTrue)
		})

		Convey("Then circuits bind inputs with the new prefix", func() {
			c, err := AngleEncoding(1, GateRX, cfg)
			So(err, ShouldBeNil)
			So(c.Params(), ShouldResemble, []string{"x_0"})
		})
	})

	Convey("Given a missing config file", t, func() {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		So(err, ShouldNotBeNil)
	})
}

func TestConfigEnvironment(t *testing.T) {
	t.Setenv("QSYM_VERBOSE", "true")
	t.Setenv("QSYM_INPUT_PREFIX", "in")

	Convey("Given QSYM_ environment variables", t, func() {
		cfg, err := LoadConfig("")
		So(err, ShouldBeNil)
		So(cfg.Verbose, ShouldBeTrue)
		So(cfg.InputPrefix, ShouldEqual, "in")
	})
}
