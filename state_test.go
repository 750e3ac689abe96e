package qsym

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateVector(t *testing.T) {
	Convey("Given |101> prepared with a distant CX", t, func() {
		c := NewCircuit(3, nil)
		So(c.X(0), ShouldBeNil)
		So(c.CX(0, 2), ShouldBeNil)

		sv, err := c.Numeric()
		So(err, ShouldBeNil)

		Convey("Then exactly one basis state is populated", func() {
			states := sv.BasisStates(1e-12)
			So(len(states), ShouldEqual, 1)
			So(states[0].Label, ShouldEqual, "|101>")
			So(states[0].Index, ShouldEqual, 5)
			So(states[0].Probability, ShouldAlmostEqual, 1.0)
		})

		Convey("Then the state is normalized", func() {
			So(sv.Norm(), ShouldAlmostEqual, 1.0)
		})
	})

	Convey("Given a Bell state", t, func() {
		c := NewCircuit(2, nil)
		So(c.H(0), ShouldBeNil)
		So(c.CX(0, 1), ShouldBeNil)

		sv, err := c.Numeric()
		So(err, ShouldBeNil)

		Convey("Then |00> and |11> share the probability", func() {
			probs := sv.Probabilities()
			So(probs[0], ShouldAlmostEqual, 0.5)
			So(probs[3], ShouldAlmostEqual, 0.5)
			So(probs[1], ShouldAlmostEqual, 0.0)
		})
	})

	Convey("Given a state with free parameters", t, func() {
		c := NewCircuit(1, nil)
		So(c.RY("theta", 0), ShouldBeNil)

		_, err := c.Numeric()
		So(errors.Is(err, ErrSymbolicState), ShouldBeTrue)

		Convey("Then binding the parameters makes it numeric", func() {
			sv, err := NumericState(c.Bind(map[string]Expr{"theta": Pi}))
			So(err, ShouldBeNil)
			So(sv.Probabilities()[1], ShouldAlmostEqual, 1.0)
		})
	})

	Convey("Given a matrix that is not a state", t, func() {
		_, err := NumericState(Identity(2))
		So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)

		_, err = NumericState(NewMatrix(3, 1))
		So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
	})
}
