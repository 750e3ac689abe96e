package qsym

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAngleEncoding(t *testing.T) {
	Convey("Given an RY encoding over three wires", t, func() {
		c, err := AngleEncoding(3, GateRY, nil)
		So(err, ShouldBeNil)

		Convey("Then each wire gets its own input", func() {
			So(c.Params(), ShouldResemble, []string{"inputs_0", "inputs_1", "inputs_2"})
			So(len(c.Gates()), ShouldEqual, 3)
			So(c.Diagram().Len(), ShouldEqual, 4)
		})
	})

	Convey("Given a custom input prefix", t, func() {
		c, err := AngleEncoding(2, GateRZ, &Config{InputPrefix: "x"})
		So(err, ShouldBeNil)
		So(c.Params(), ShouldResemble, []string{"x0", "x1"})
	})

	Convey("Given a gate that is not a single-qubit rotation", t, func() {
		for _, kind := range []GateKind{GateCX, GateH, GateRXX} {
			_, err := AngleEncoding(2, kind, nil)
			So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)
		}
	})
}

func TestSingleRot(t *testing.T) {
	Convey("Given the default two-qubit ansatz", t, func() {
		c, err := SingleRot(2, NewSingleRotOptions(), nil)
		So(err, ShouldBeNil)

		Convey("Then it has three rotations per wire and one entangler", func() {
			So(c.Params(), ShouldResemble, []string{
				"T^0_0,0", "T^0_0,1", "T^0_0,2",
				"T^0_1,0", "T^0_1,1", "T^0_1,2",
			})
			So(len(c.Gates()), ShouldEqual, 7)
			So(c.Gates()[6].Kind, ShouldEqual, GateCX)
			So(c.Diagram().Len(), ShouldEqual, 8)
		})
	})

	Convey("Given two layers with a parametrized entangler", t, func() {
		c, err := SingleRot(3, SingleRotOptions{
			Layers:    2,
			Prefix:    "w",
			Rotations: []GateKind{GateRY},
			Entangler: GateRZZ,
		}, nil)
		So(err, ShouldBeNil)

		Convey("Then entangler angles are parameters too", func() {
			So(c.Params(), ShouldContain, "w^1_1,e")
			So(len(c.Params()), ShouldEqual, 2*(3+2))
			So(len(c.Gates()), ShouldEqual, 10)
		})
	})

	Convey("Given a single-qubit entangler", t, func() {
		for _, kind := range []GateKind{GateRZ, GateX, GateKind(42)} {
			_, err := SingleRot(2, SingleRotOptions{Entangler: kind}, nil)
			So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)
		}
	})

	Convey("Given a prefix that is not a plain name", t, func() {
		_, err := SingleRot(2, SingleRotOptions{Prefix: "a+b"}, nil)
		So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)
	})

	Convey("Given a two-qubit gate among the rotations", t, func() {
		_, err := SingleRot(2, SingleRotOptions{Rotations: []GateKind{GateCX}}, nil)
		So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
	})
}

func TestMeasurementLayer(t *testing.T) {
	Convey("Given |10> read on both wires", t, func() {
		c := NewCircuit(2, nil)
		So(c.X(0), ShouldBeNil)

		values, err := Measurement{Wires: []int{0, 1}, Bases: []Basis{BasisZ, BasisX}}.Apply(c)
		So(err, ShouldBeNil)

		Convey("Then values are exact and wire-major", func() {
			got := make([]string, len(values))
			for i, v := range values {
				got[i] = v.String()
			}
			So(got, ShouldResemble, []string{"-1", "0", "1", "0"})
		})
	})

	Convey("Given a wire outside the circuit", t, func() {
		_, err := Measurement{Wires: []int{3}, Bases: []Basis{BasisZ}}.Apply(NewCircuit(1, nil))
		var wireErr *WireIndexError
		So(errors.As(err, &wireErr), ShouldBeTrue)
	})
}
