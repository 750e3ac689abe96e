package qsym

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const bellYAML = `
name: bell
qubits: 2
gates:
  - gate: h
    wires: [0]
  - gate: rx
    param: theta
    wires: [1]
    barrier: true
  - gate: cnot
    wires: [0, 1]
  - barrier: true
measure:
  mode: measure_all
  bases: [Z, X]
bind:
  theta: pi/2
`

func TestCircuitFile(t *testing.T) {
	Convey("Given a YAML circuit", t, func() {
		desc, err := ParseCircuitSpec([]byte(bellYAML))
		So(err, ShouldBeNil)
		So(desc.Name, ShouldEqual, "bell")
		So(len(desc.Gates), ShouldEqual, 4)

		Convey("When it is built", func() {
			c, err := desc.Build(nil)
			So(err, ShouldBeNil)

			Convey("Then gates, barriers and readout follow the file", func() {
				So(len(c.Gates()), ShouldEqual, 3)
				So(c.Gates()[2].Kind, ShouldEqual, GateCX)
				So(c.Diagram().Len(), ShouldEqual, 5)
				So(c.Params(), ShouldResemble, []string{"theta"})

				mode, bases := c.Measurement()
				So(mode, ShouldEqual, MeasureAll)
				So(bases, ShouldResemble, []Basis{BasisZ, BasisX})
			})

			Convey("Then the bind section resolves exact angles", func() {
				bindings, err := desc.Bindings()
				So(err, ShouldBeNil)
				So(bindings["theta"].String(), ShouldEqual, "1/2*pi")

				values, err := c.CallWith(bindings)
				So(err, ShouldBeNil)
				So(len(values), ShouldEqual, 4)
			})
		})

		Convey("When it is read from disk", func() {
			path := filepath.Join(t.TempDir(), "bell.yaml")
			So(os.WriteFile(path, []byte(bellYAML), 0o644), ShouldBeNil)

			loaded, err := LoadCircuitFile(path)
			So(err, ShouldBeNil)
			So(loaded, ShouldResemble, desc)
		})
	})

	Convey("Given invalid circuits", t, func() {
		_, err := ParseCircuitSpec([]byte("name: empty\nqubits: 0\n"))
		So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)

		_, err = ParseCircuitSpec([]byte("qubits: [1"))
		So(err, ShouldNotBeNil)

		_, err = LoadCircuitFile(filepath.Join(t.TempDir(), "missing.yaml"))
		So(err, ShouldNotBeNil)

		for _, body := range []string{
			"qubits: 1\ngates:\n  - gate: toffoli\n    wires: [0]\n",
			"qubits: 1\ngates:\n  - gate: rx\n    wires: [0]\n",
			"qubits: 1\ngates:\n  - gate: x\n    wires: [4]\n",
			"qubits: 1\nmeasure:\n  mode: all\n  bases: [W]\n",
		} {
			desc, err := ParseCircuitSpec([]byte(body))
			So(err, ShouldBeNil)
			_, err = desc.Build(nil)
			So(err, ShouldNotBeNil)
		}
	})
}
