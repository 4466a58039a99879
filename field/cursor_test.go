package field

import "testing"

func TestCursorAt_MapsOffsetsThroughWrappedLayout(t *testing.T) {
	text := "A wrap occurs"
	r := Rect{X: 1, Y: 1, Width: 5, Height: 5}
	lines := mustWrap(t, text, r.Width, r.Height)

	cases := []struct {
		name   string
		offset int
		wantX  int
		wantY  int
	}{
		{name: "first char", offset: 0, wantX: 1, wantY: 1},
		{name: "space after wrap", offset: 6, wantX: 5, wantY: 2},
		{name: "final char", offset: 12, wantX: 1, wantY: 4},
		{name: "offset past end clamps to final char", offset: 1 << 30, wantX: 1, wantY: 4},
		{name: "negative offset clamps to first char", offset: -3, wantX: 1, wantY: 1},
	}

	for _, tc := range cases {
		x, y := cursorAt(lines, r, len(text), tc.offset)
		if x != tc.wantX || y != tc.wantY {
			t.Fatalf("%s: got (%d, %d), want (%d, %d)", tc.name, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestCursorAt_EmptyText_RectOrigin(t *testing.T) {
	r := Rect{X: 3, Y: 2, Width: 5, Height: 5}
	x, y := cursorAt(nil, r, 0, 7)
	if x != 3 || y != 2 {
		t.Fatalf("cursor for empty text: got (%d, %d), want (3, 2)", x, y)
	}
}

func TestCursorAt_DegenerateRect_RectOrigin(t *testing.T) {
	for _, r := range []Rect{
		{X: 2, Y: 4, Width: 0, Height: 3},
		{X: 2, Y: 4, Width: 3, Height: 0},
		{X: 2, Y: 4, Width: -1, Height: -1},
	} {
		x, y := cursorAt(nil, r, 10, 5)
		if x != r.X || y != r.Y {
			t.Fatalf("rect %+v: got (%d, %d), want (%d, %d)", r, x, y, r.X, r.Y)
		}
	}
}

func TestCursorAt_DroppedOffset_FallsToBottomRight(t *testing.T) {
	// Height 1 truncates "ab cdef" to "ab c"; the final chars are unreachable.
	text := "ab cdef"
	r := Rect{X: 2, Y: 3, Width: 4, Height: 1}
	lines := mustWrap(t, text, r.Width, r.Height)
	assertLines(t, lines, []string{"ab c"})

	x, y := cursorAt(lines, r, len(text), len(text)-1)
	if x != 5 || y != 3 {
		t.Fatalf("dropped offset: got (%d, %d), want (5, 3)", x, y)
	}
}

func TestCursorAt_NewlineOffsetLandsOnNextRow(t *testing.T) {
	// The walk does not count newline separators, so the newline's own offset
	// already addresses the first cell of the following row.
	text := "a\nb"
	r := Rect{X: 0, Y: 0, Width: 5, Height: 5}
	lines := mustWrap(t, text, r.Width, r.Height)
	assertLines(t, lines, []string{"a", "b"})

	x, y := cursorAt(lines, r, len(text), 1)
	if x != 0 || y != 1 {
		t.Fatalf("newline offset: got (%d, %d), want (0, 1)", x, y)
	}
}

func TestCursorAt_AdvancesRightOrWrapsToNextRow(t *testing.T) {
	text := "A wrap occurs"
	r := Rect{X: 1, Y: 1, Width: 5, Height: 5}
	lines := mustWrap(t, text, r.Width, r.Height)

	prevX, prevY := cursorAt(lines, r, len(text), 0)
	for offset := 1; offset < len(text); offset++ {
		x, y := cursorAt(lines, r, len(text), offset)
		sameRow := y == prevY && x == prevX+1
		nextRow := y == prevY+1 && x == r.X
		if !sameRow && !nextRow {
			t.Fatalf("offset %d: got (%d, %d) after (%d, %d)", offset, x, y, prevX, prevY)
		}
		prevX, prevY = x, y
	}
}

func TestField_CursorAt_WrapNone_ClampsIntoRect(t *testing.T) {
	f := New(Config{Wrap: WrapNone})
	if err := f.SetValue("abcdefghij"); err != nil {
		t.Fatalf("SetValue: unexpected error %v", err)
	}
	f.SetOffset(9)

	r := Rect{X: 0, Y: 0, Width: 4, Height: 2}
	x, y := f.CursorAt(r)
	if x != 3 || y != 0 {
		t.Fatalf("clamped cursor: got (%d, %d), want (3, 0)", x, y)
	}
}

func TestField_CursorAt_WrapWord_UsesWrappedLayout(t *testing.T) {
	f := New(Config{Wrap: WrapWord})
	if err := f.SetValue("A wrap occurs"); err != nil {
		t.Fatalf("SetValue: unexpected error %v", err)
	}
	f.SetOffset(7)

	x, y := f.CursorAt(Rect{X: 0, Y: 0, Width: 5, Height: 5})
	if x != 0 || y != 2 {
		t.Fatalf("cursor: got (%d, %d), want (0, 2)", x, y)
	}
}
