package qsym

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLinear(t *testing.T) {
	Convey("Given a layer with two inputs and one output", t, func() {
		l := NewLinear(2, 1)

		Convey("When applied to symbols", func() {
			out, err := l.Apply([]Expr{Symbol("x"), Symbol("y")})

			Convey("Then it is the bias plus the weighted inputs", func() {
				So(err, ShouldBeNil)
				So(len(out), ShouldEqual, 1)
				So(out[0].String(), ShouldEqual, "L^1_0 + L^1_1*x + L^1_2*y")
			})

			Convey("Then it differentiates by weight", func() {
				So(out[0].Diff("L^1_2").String(), ShouldEqual, "y")
			})
		})

		Convey("When applied to the wrong number of inputs", func() {
			_, err := l.Apply([]Expr{Symbol("x")})
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("Then it lists every weight", func() {
			So(l.Params(), ShouldResemble, []string{"L^1_0", "L^1_1", "L^1_2"})
		})
	})

	Convey("Given a layer fed by a circuit readout", t, func() {
		c := NewCircuit(1, nil)
		So(c.RX("theta", 0), ShouldBeNil)
		z, err := c.Measure(0, BasisZ)
		So(err, ShouldBeNil)

		out, err := NewLinear(1, 2).Apply([]Expr{z})
		So(err, ShouldBeNil)

		Convey("Then the model is one expression over weights and angles", func() {
			So(FreeSymbols(out[1]), ShouldResemble, []string{"L^2_0", "L^2_1", "theta"})
			bound := out[1].Subs(map[string]Expr{"L^2_0": Int(1), "L^2_1": Int(2), "theta": Pi})
			So(bound.String(), ShouldEqual, "-1")
		})
	})
}
