package token

import "testing"

func TestMakePosLineCol(t *testing.T) {
	cases := []struct {
		line, col int
	}{
		{1, 1},
		{3, 7},
		{120, 4},
	}
	for _, c := range cases {
		p := MakePos(c.line, c.col)
		gotLine, gotCol := p.LineCol()
		if gotLine != c.line || gotCol != c.col {
			t.Errorf("MakePos(%d, %d).LineCol() = (%d, %d)", c.line, c.col, gotLine, gotCol)
		}
		if p.Unknown() {
			t.Errorf("MakePos(%d, %d) reported as unknown", c.line, c.col)
		}
	}
}

func TestPosUnknown(t *testing.T) {
	var p Pos
	if !p.Unknown() {
		t.Error("zero Pos should be unknown")
	}
}

func TestPosString(t *testing.T) {
	p := MakePos(3, 7)
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPosPosition(t *testing.T) {
	p := MakePos(2, 5)
	pos := p.Position("prog.stk")
	if pos.Filename != "prog.stk" || pos.Line != 2 || pos.Column != 5 {
		t.Errorf("Position() = %+v", pos)
	}
}
