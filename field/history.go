package field

type fieldSnapshot struct {
	value  string
	offset int
}

type historyState struct {
	undo []fieldSnapshot
	redo []fieldSnapshot
}

func (f *Field) snapshot() fieldSnapshot {
	return fieldSnapshot{value: f.value, offset: f.offset}
}

func (f *Field) restore(s fieldSnapshot) {
	f.value = s.value
	f.offset = clampInt(s.offset, 0, len(s.value))
}

func (f *Field) recordUndo(prev fieldSnapshot) {
	limit := f.histLimit
	if limit <= 0 {
		return
	}

	f.hist.undo = append(f.hist.undo, prev)
	if len(f.hist.undo) > limit {
		f.hist.undo = f.hist.undo[len(f.hist.undo)-limit:]
	}
	f.hist.redo = nil
}

func (f *Field) CanUndo() bool { return len(f.hist.undo) > 0 }

func (f *Field) CanRedo() bool { return len(f.hist.redo) > 0 }

// Undo restores the value and cursor from before the latest edit. It reports
// whether anything changed.
func (f *Field) Undo() bool {
	if len(f.hist.undo) == 0 {
		return false
	}

	cur := f.snapshot()
	i := len(f.hist.undo) - 1
	prev := f.hist.undo[i]
	f.hist.undo = f.hist.undo[:i]
	f.hist.redo = append(f.hist.redo, cur)

	f.restore(prev)
	return true
}

// Redo reapplies the latest undone edit. It reports whether anything changed.
func (f *Field) Redo() bool {
	if len(f.hist.redo) == 0 {
		return false
	}

	cur := f.snapshot()
	i := len(f.hist.redo) - 1
	next := f.hist.redo[i]
	f.hist.redo = f.hist.redo[:i]

	if f.histLimit > 0 {
		f.hist.undo = append(f.hist.undo, cur)
		if len(f.hist.undo) > f.histLimit {
			f.hist.undo = f.hist.undo[len(f.hist.undo)-f.histLimit:]
		}
	}

	f.restore(next)
	return true
}
