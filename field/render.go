package field

import "strings"

// View renders the field into a width-by-height block, one row per line,
// padded with empty rows up to height. When the field is focused, the cell
// returned by CursorAt is painted with the cursor style.
func (f Field) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := f.Lines(width, height)
	if len(lines) > height {
		lines = lines[:height]
	}

	cx, cy := -1, -1
	if f.focused {
		cx, cy = f.CursorAt(Rect{X: 0, Y: 0, Width: width, Height: height})
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		line := ""
		if y < len(lines) {
			line = lines[y]
		}
		if len(line) > width {
			line = line[:width] // WrapNone layouts are unbounded
		}
		if y == cy {
			rows = append(rows, f.renderCursorRow(line, cx))
			continue
		}
		rows = append(rows, f.style.Text.Render(line))
	}
	return strings.Join(rows, "\n")
}

// renderCursorRow paints the cursor cell inside line, extending a short row
// with spaces when the cursor sits past its end.
func (f Field) renderCursorRow(line string, cx int) string {
	if cx < 0 {
		return f.style.Text.Render(line)
	}
	for len(line) <= cx {
		line += " "
	}

	var sb strings.Builder
	if cx > 0 {
		sb.WriteString(f.style.Text.Render(line[:cx]))
	}
	sb.WriteString(f.style.Cursor.Render(string(line[cx])))
	if cx+1 < len(line) {
		sb.WriteString(f.style.Text.Render(line[cx+1:]))
	}
	return sb.String()
}
