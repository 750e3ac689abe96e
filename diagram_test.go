package qsym

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDiagram(t *testing.T) {
	Convey("Given a CX across a middle wire", t, func() {
		c := NewCircuit(3, nil)
		So(c.X(0), ShouldBeNil)
		So(c.CX(0, 2), ShouldBeNil)

		Convey("Then the text diagram draws the connector", func() {
			lines := strings.Split(c.Diagram().String(), "\n")
			So(lines, ShouldResemble, []string{
				"q0: ─X─@─",
				"q1: ───|─",
				"q2: ───X─",
			})
		})
	})

	Convey("Given a parametrized circuit with a barrier", t, func() {
		c := NewCircuit(2, nil)
		So(c.H(0), ShouldBeNil)
		So(c.RX("theta", 1), ShouldBeNil)
		So(c.CX(0, 1), ShouldBeNil)
		c.Barrier()

		Convey("Then the barrier is drawn but not recorded as a gate", func() {
			So(c.Diagram().Len(), ShouldEqual, 4)
			So(len(c.Gates()), ShouldEqual, 3)
			So(c.Diagram().String(), ShouldContainSubstring, "RX(theta)")
			So(c.Diagram().String(), ShouldContainSubstring, "░")
		})

		Convey("Then the columns line up", func() {
			lines := strings.Split(c.Diagram().String(), "\n")
			So(len([]rune(lines[0])), ShouldEqual, len([]rune(lines[1])))
		})

		Convey("Then QASM lists the operations in order", func() {
			So(c.Diagram().QASM(), ShouldEqual, strings.Join([]string{
				"OPENQASM 2.0;",
				`include "qelib1.inc";`,
				"",
				"qreg q[2];",
				"",
				"h q[0];",
				"rx(theta) q[1];",
				"cx q[0], q[1];",
				"barrier q;",
				"",
			}, "\n"))
		})

		Convey("Then a barrier leaves the state untouched", func() {
			d := NewCircuit(2, nil)
			So(d.H(0), ShouldBeNil)
			So(d.RX("theta", 1), ShouldBeNil)
			So(d.CX(0, 1), ShouldBeNil)
			So(c.State().Equal(d.State()), ShouldBeTrue)
		})
	})

	Convey("Given diagrams of different widths", t, func() {
		wide := NewDiagram(3)
		wide.Append("H", nil, 2)
		narrow := NewDiagram(1)
		narrow.Append("RZ", Symbol("a"), 0)

		d := wide.Compose(narrow)

		Convey("Then the composition keeps every operation on the wider grid", func() {
			So(d.Len(), ShouldEqual, 2)
			So(len(strings.Split(d.String(), "\n")), ShouldEqual, 3)
			So(wide.Len(), ShouldEqual, 1)
		})
	})
}
