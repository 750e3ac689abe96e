package qsym

import (
	"errors"
	"math/big"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParam(t *testing.T) {
	Convey("Given parameter strings", t, func() {
		cases := []struct{ in, want string }{
			{"pi", "pi"},
			{"pi/2", "1/2*pi"},
			{"-3*pi/4", "-3/4*pi"},
			{"2pi", "2*pi"},
			{"-pi", "-pi"},
			{"3", "3"},
			{"0.5", "0.5"},
			{" theta ", "theta"},
		}
		for _, tc := range cases {
			got, err := Param(tc.in)
			So(err, ShouldBeNil)
			So(got.String(), ShouldEqual, tc.want)
		}
	})

	Convey("Given names that look like special floats", t, func() {
		for _, name := range []string{"nan", "inf", "Infinity"} {
			got, err := Param(name)
			So(err, ShouldBeNil)
			So(FreeSymbols(got), ShouldResemble, []string{name})
		}

		c := NewCircuit(1, nil)
		So(c.RX("nan", 0), ShouldBeNil)
		So(c.Params(), ShouldResemble, []string{"nan"})
	})

	Convey("Given names that would print like an expression", t, func() {
		for _, name := range []string{"sin(x)", "I", "x^2", "a+b", "2x", "a b"} {
			_, err := Param(name)
			So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)
		}

		for _, name := range []string{"T^0_1,2", "L^1_0", "theta_2", "x'"} {
			got, err := Param(name)
			So(err, ShouldBeNil)
			So(got.String(), ShouldEqual, name)
		}
	})

	Convey("Given an angle over zero", t, func() {
		_, err := Param("pi/0")
		So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)
	})

	Convey("Given Go values", t, func() {
		v, err := Param(2)
		So(err, ShouldBeNil)
		So(v.(*Num).IsExact(), ShouldBeTrue)

		v, err = Param(big.NewRat(3, 6))
		So(err, ShouldBeNil)
		So(v.String(), ShouldEqual, "1/2")

		v, err = Param(0.25)
		So(err, ShouldBeNil)
		So(v.(*Num).IsExact(), ShouldBeFalse)

		sym := Symbol("phi")
		v, err = Param(sym)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, sym)

		for _, bad := range []any{nil, "", []int{1}} {
			_, err = Param(bad)
			So(errors.Is(err, ErrInvalidParameter), ShouldBeTrue)
		}
	})
}
