package qsym

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func realValues(values []Expr) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		c, ok := v.Eval()
		So(ok, ShouldBeTrue)
		out[i] = real(c)
	}
	return out
}

func TestCall(t *testing.T) {
	Convey("Given a one-qubit RX angle encoding", t, func() {
		c, err := AngleEncoding(1, GateRX, nil)
		So(err, ShouldBeNil)
		So(c.SetMeasurement(MeasureSingle, BasisZ), ShouldBeNil)

		Convey("When called with pi", func() {
			values, err := c.Call(math.Pi)

			Convey("Then the Z expectation is -1", func() {
				So(err, ShouldBeNil)
				So(realValues(values)[0], ShouldAlmostEqual, -1.0)
			})
		})

		Convey("When called with 0", func() {
			values, err := c.Call(0)
			So(err, ShouldBeNil)
			So(realValues(values)[0], ShouldAlmostEqual, 1.0)
		})

		Convey("When called twice with different inputs", func() {
			first, _ := c.Call(math.Pi / 2)
			second, _ := c.Call(math.Pi)

			Convey("Then the symbolic state is reused and unbound", func() {
				So(realValues(first)[0], ShouldAlmostEqual, 0.0)
				So(realValues(second)[0], ShouldAlmostEqual, -1.0)
				So(c.Params(), ShouldResemble, []string{"inputs_0"})
			})
		})
	})

	Convey("Given measure_all over Z and X on |01>", t, func() {
		c := NewCircuit(2, nil)
		So(c.X(1), ShouldBeNil)
		So(c.SetMeasurement(MeasureAll, BasisZ, BasisX), ShouldBeNil)

		values, err := c.Call()
		So(err, ShouldBeNil)

		Convey("Then values are ordered wire-major", func() {
			got := realValues(values)
			want := []float64{1, 0, -1, 0}
			So(len(got), ShouldEqual, len(want))
			for i := range want {
				So(got[i], ShouldAlmostEqual, want[i])
			}
		})
	})

	Convey("Given no readout", t, func() {
		c := NewCircuit(1, nil)
		So(c.RY("inputs_0", 0), ShouldBeNil)

		values, err := c.Call(math.Pi)
		So(err, ShouldBeNil)

		Convey("Then the bound amplitudes are returned", func() {
			got := realValues(values)
			So(len(got), ShouldEqual, 2)
			So(got[0], ShouldAlmostEqual, 0.0)
			So(got[1], ShouldAlmostEqual, 1.0)
		})
	})

	Convey("Given explicit inputs", t, func() {
		c := NewCircuit(1, nil)
		So(c.RX("a", 0), ShouldBeNil)
		So(c.RY("w", 0), ShouldBeNil)
		So(c.SetMeasurement(MeasureSingle, BasisZ), ShouldBeNil)
		c.SetInputs("a")

		Convey("When more values than inputs are passed", func() {
			_, err := c.Call(1, 2)
			So(errors.Is(err, ErrTooManyInputs), ShouldBeTrue)
		})

		Convey("When a parameter is left unbound", func() {
			values, err := c.Call(0.5)

			Convey("Then it stays symbolic in the result", func() {
				So(err, ShouldBeNil)
				So(FreeSymbols(values[0]), ShouldResemble, []string{"w"})
			})
		})

		Convey("When extra bindings cover the rest", func() {
			values, err := c.CallWith(map[string]Expr{"w": Int(0), "a": Pi}, 0)

			Convey("Then positional inputs win over extras", func() {
				So(err, ShouldBeNil)
				So(realValues(values)[0], ShouldAlmostEqual, 1.0)
			})
		})
	})

	Convey("Given Bind with exact values", t, func() {
		c := NewCircuit(1, nil)
		So(c.RX("theta", 0), ShouldBeNil)

		state := c.Bind(map[string]Expr{"theta": Pi})

		Convey("Then the state stays exact", func() {
			So(state.At(0, 0).String(), ShouldEqual, "0")
			So(state.At(1, 0).String(), ShouldEqual, "-I")
		})
	})

	Convey("Given measurement mode names", t, func() {
		for name, want := range map[string]MeasurementMode{
			"measure_all": MeasureAll, "single": MeasureSingle, "": MeasureUnset,
		} {
			got, err := ParseMeasurementMode(name)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
			back, err := ParseMeasurementMode(got.String())
			So(err, ShouldBeNil)
			So(back, ShouldEqual, want)
		}

		_, err := ParseMeasurementMode("sometimes")
		So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)
		So(new(Circuit).SetMeasurement(MeasureAll, Basis("Q")), ShouldNotBeNil)
	})
}
