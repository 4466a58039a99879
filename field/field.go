package field

import (
	"strings"

	"github.com/iw2rmb/tuido/internal/ascii"
)

const defaultHistoryLimit = 100

// Config configures a Field.
type Config struct {
	// Wrap selects the layout mode used by Lines, CursorAt and View.
	Wrap WrapMode

	// SingleLine rejects newline input and flattens pasted newlines to
	// spaces.
	SingleLine bool

	// Rendering options.
	Style Style

	// HistoryLimit bounds the undo stack. Zero means defaultHistoryLimit,
	// negative disables history.
	HistoryLimit int
}

// Field is an editable ASCII text buffer with a byte cursor.
//
// The cursor offset addresses the insertion point and stays within
// [0, len(value)] through every operation. All input paths validate that the
// value remains pure ASCII.
type Field struct {
	value  string
	offset int

	wrap       WrapMode
	singleLine bool
	style      Style
	focused    bool

	hist      historyState
	histLimit int
}

// New returns an empty Field configured by cfg.
func New(cfg Config) Field {
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return Field{
		wrap:       cfg.Wrap,
		singleLine: cfg.SingleLine,
		style:      cfg.Style,
		histLimit:  cfg.HistoryLimit,
	}
}

// Value returns the current text.
func (f Field) Value() string { return f.value }

// SetValue replaces the text, moves the cursor to its end and resets edit
// history. Non-ASCII input is rejected and leaves the field unchanged.
func (f *Field) SetValue(s string) error {
	if i := ascii.FirstInvalid(s); i >= 0 {
		return notASCII(s, i)
	}
	if f.singleLine {
		s = flattenNewlines(s)
	}
	f.value = s
	f.offset = len(s)
	f.hist = historyState{}
	return nil
}

// Offset returns the cursor byte offset.
func (f Field) Offset() int { return f.offset }

// SetOffset moves the cursor, clamping into [0, len(value)].
func (f *Field) SetOffset(offset int) {
	f.offset = clampInt(offset, 0, len(f.value))
}

// Wrap returns the active layout mode.
func (f Field) Wrap() WrapMode { return f.wrap }

// SetWrap switches the layout mode.
func (f *Field) SetWrap(mode WrapMode) { f.wrap = mode }

// Focus marks the field focused so View paints the cursor cell.
func (f *Field) Focus() { f.focused = true }

// Blur removes focus.
func (f *Field) Blur() { f.focused = false }

// Focused reports whether the field has focus.
func (f Field) Focused() bool { return f.focused }

// InsertRune inserts one printable ASCII rune at the cursor. Newlines are
// accepted on multiline fields only; everything else outside 0x20..0x7E is
// dropped.
func (f *Field) InsertRune(r rune) {
	switch {
	case r == '\n':
		if f.singleLine {
			return
		}
	case r > 0x7f || !ascii.Printable(byte(r)):
		return
	}

	prev := f.snapshot()
	f.value = f.value[:f.offset] + string(r) + f.value[f.offset:]
	f.offset++
	f.recordUndo(prev)
}

// InsertString inserts s at the cursor as one undoable edit. Non-ASCII input
// is rejected wholesale. Line endings are normalized to '\n'; on single-line
// fields they become single spaces instead.
func (f *Field) InsertString(s string) error {
	if i := ascii.FirstInvalid(s); i >= 0 {
		return notASCII(s, i)
	}
	if f.singleLine {
		s = flattenNewlines(s)
	} else {
		s = normalizeNewlines(s)
	}
	if s == "" {
		return nil
	}

	prev := f.snapshot()
	f.value = f.value[:f.offset] + s + f.value[f.offset:]
	f.offset += len(s)
	f.recordUndo(prev)
	return nil
}

// Backspace deletes the byte before the cursor.
func (f *Field) Backspace() {
	if f.offset <= 0 {
		return
	}
	prev := f.snapshot()
	f.value = f.value[:f.offset-1] + f.value[f.offset:]
	f.offset--
	f.recordUndo(prev)
}

// Delete removes the byte under the cursor.
func (f *Field) Delete() {
	if f.offset >= len(f.value) {
		return
	}
	prev := f.snapshot()
	f.value = f.value[:f.offset] + f.value[f.offset+1:]
	f.recordUndo(prev)
}

// MoveLeft moves the cursor one byte back.
func (f *Field) MoveLeft() {
	if f.offset > 0 {
		f.offset--
	}
}

// MoveRight moves the cursor one byte forward.
func (f *Field) MoveRight() {
	if f.offset < len(f.value) {
		f.offset++
	}
}

// MoveStart moves the cursor to the start of the current logical line.
func (f *Field) MoveStart() {
	f.offset = strings.LastIndexByte(f.value[:f.offset], '\n') + 1
}

// MoveEnd moves the cursor to the end of the current logical line, onto its
// newline when one follows.
func (f *Field) MoveEnd() {
	if i := strings.IndexByte(f.value[f.offset:], '\n'); i >= 0 {
		f.offset += i
		return
	}
	f.offset = len(f.value)
}

// Lines lays the current value out for a width-by-height viewport according
// to the wrap mode. WrapNone ignores the bounds and returns the logical lines
// as-is.
func (f Field) Lines(width, height int) []string {
	switch f.wrap {
	case WrapChar:
		return wrapChars(f.value, width, height)
	case WrapWord:
		return wrapWords(f.value, width, height)
	default:
		return logicalLines(f.value)
	}
}

// CursorAt returns the screen cell of the cursor within r. In WrapNone mode
// the layout is unbounded, so the cell is clamped into the rectangle.
func (f Field) CursorAt(r Rect) (x, y int) {
	x, y = cursorAt(f.Lines(r.Width, r.Height), r, len(f.value), f.offset)
	if f.wrap == WrapNone {
		x = clampInt(x, r.X, r.X+r.Width-1)
		y = clampInt(y, r.Y, r.Y+r.Height-1)
	}
	return x, y
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func flattenNewlines(s string) string {
	return strings.ReplaceAll(normalizeNewlines(s), "\n", " ")
}
