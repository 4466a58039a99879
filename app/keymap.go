package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application key bindings across the list view and the
// edit popup's normal and insert modes.
type KeyMap struct {
	// List view.
	Quit        key.Binding
	Down, Up    key.Binding
	First, Last key.Binding
	Toggle      key.Binding
	Add         key.Binding
	Edit        key.Binding
	Delete      key.Binding

	// Edit popup, normal mode.
	Insert    key.Binding
	CycleWrap key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Save      key.Binding
	Cancel    key.Binding

	// Edit popup, both modes.
	NextField key.Binding

	// Edit popup, insert mode.
	ExitInsert  key.Binding
	Enter       key.Binding
	Left, Right key.Binding
	Home, End   key.Binding
	Backspace   key.Binding
	DeleteChar  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		First:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
		Last:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
		Toggle: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),

		Insert:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		CycleWrap: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "cycle wrap")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "cancel")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),

		ExitInsert: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:       key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:        key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		DeleteChar: key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
	}
}
