package field

// Rect is a screen-space rectangle in absolute terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// cursorAt maps a byte offset into the text onto the screen cell of the
// character it indexes, given the wrapped layout for r. Offsets at or past
// the end of the text land on the last character, and the line walk does not
// count the newline separators the layout consumed. When the layout dropped
// the clamped offset, the bottom-right cell of r is returned.
//
// Empty text and degenerate rectangles map to the rectangle origin.
func cursorAt(lines []string, r Rect, textLen, offset int) (x, y int) {
	if textLen <= 0 || r.Width <= 0 || r.Height <= 0 {
		return r.X, r.Y
	}

	offset = clampInt(offset, 0, textLen-1)
	for row, line := range lines {
		if offset >= len(line) {
			offset -= len(line)
			continue
		}
		return r.X + offset, r.Y + row
	}
	return r.X + r.Width - 1, r.Y + r.Height - 1
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
