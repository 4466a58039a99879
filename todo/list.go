package todo

// List is an ordered collection of items with at most one selected entry.
//
// All operations clamp or no-op instead of panicking, so callers can feed
// them key events without guarding.
type List struct {
	items    []Item
	selected int // index into items, -1 while nothing is selected
}

// NewList returns a list over a copy of items with no selection.
func NewList(items []Item) List {
	return List{items: append([]Item(nil), items...), selected: -1}
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the items in order.
func (l *List) Items() []Item {
	return append([]Item(nil), l.items...)
}

// At returns the item at index i, or a zero Item when i is out of range.
func (l *List) At(i int) Item {
	if i < 0 || i >= len(l.items) {
		return Item{}
	}
	return l.items[i]
}

// SelectedIndex returns the selected index, or -1.
func (l *List) SelectedIndex() int { return l.selected }

// Selected returns the selected item and whether a selection exists.
func (l *List) Selected() (Item, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return Item{}, false
	}
	return l.items[l.selected], true
}

// SelectNext moves the selection down one item. With no selection it selects
// the first item; at the bottom it stays put.
func (l *List) SelectNext() {
	if len(l.items) == 0 {
		return
	}
	if l.selected < 0 {
		l.selected = 0
		return
	}
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SelectPrev moves the selection up one item. With no selection it selects
// the last item; at the top it stays put.
func (l *List) SelectPrev() {
	if len(l.items) == 0 {
		return
	}
	if l.selected < 0 {
		l.selected = len(l.items) - 1
		return
	}
	if l.selected > 0 {
		l.selected--
	}
}

// SelectFirst selects the first item, if any.
func (l *List) SelectFirst() {
	if len(l.items) == 0 {
		return
	}
	l.selected = 0
}

// SelectLast selects the last item, if any.
func (l *List) SelectLast() {
	if len(l.items) == 0 {
		return
	}
	l.selected = len(l.items) - 1
}

// Add appends an item and selects it.
func (l *List) Add(it Item) {
	l.items = append(l.items, it)
	l.selected = len(l.items) - 1
}

// RemoveSelected deletes the selected item and reports whether it did. The
// selection moves to the item that slid into the removed slot, or the new
// last item; removing the only item clears the selection.
func (l *List) RemoveSelected() bool {
	if l.selected < 0 || l.selected >= len(l.items) {
		return false
	}
	l.items = append(l.items[:l.selected], l.items[l.selected+1:]...)
	if len(l.items) == 0 {
		l.selected = -1
		return true
	}
	if l.selected >= len(l.items) {
		l.selected = len(l.items) - 1
	}
	return true
}

// ToggleSelected flips the selected item's status and reports whether it did.
func (l *List) ToggleSelected() bool {
	if l.selected < 0 || l.selected >= len(l.items) {
		return false
	}
	l.items[l.selected].Status = l.items[l.selected].Status.Toggled()
	return true
}

// SetSelected replaces the selected item and reports whether it did.
func (l *List) SetSelected(it Item) bool {
	if l.selected < 0 || l.selected >= len(l.items) {
		return false
	}
	l.items[l.selected] = it
	return true
}
