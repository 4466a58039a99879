package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tuido/todo"
)

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keys
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Down):
		m.list.SelectNext()
	case key.Matches(msg, km.Up):
		m.list.SelectPrev()
	case key.Matches(msg, km.First):
		m.list.SelectFirst()
	case key.Matches(msg, km.Last):
		m.list.SelectLast()

	case key.Matches(msg, km.Toggle):
		if m.list.ToggleSelected() {
			m.persist()
		}
	case key.Matches(msg, km.Delete):
		if m.list.RemoveSelected() {
			m.persist()
		}

	case key.Matches(msg, km.Add):
		m.openEditor(todo.Item{}, -1, modeInsert)
	case key.Matches(msg, km.Edit):
		if it, ok := m.list.Selected(); ok {
			m.openEditor(it, m.list.SelectedIndex(), modeNormal)
		}
	}

	m.refreshList()
	return m, nil
}

func (m *Model) openEditor(it todo.Item, index int, mode editMode) {
	s, err := newEditSession(it, index)
	if err != nil {
		m.status = err.Error()
		return
	}
	s.mode = mode
	m.edit = s
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit.mode == modeInsert {
		return m.updateEditInsert(msg)
	}
	return m.updateEditNormal(msg)
}

func (m Model) updateEditNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.edit
	km := m.keys
	switch {
	case key.Matches(msg, km.Cancel):
		m.edit = nil
	case key.Matches(msg, km.Insert):
		s.mode = modeInsert
	case key.Matches(msg, km.NextField):
		s.switchFocus()
	case key.Matches(msg, km.CycleWrap):
		s.cycleInfoWrap()
	case key.Matches(msg, km.Undo):
		s.focused().Undo()
	case key.Matches(msg, km.Redo):
		s.focused().Redo()
	case key.Matches(msg, km.Save):
		m.saveEdit()
	}
	return m, nil
}

func (m Model) updateEditInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.edit
	km := m.keys
	f := s.focused()

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if err := f.InsertString(string(msg.Runes)); err != nil {
			m.status = err.Error()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.ExitInsert):
		s.mode = modeNormal
	case key.Matches(msg, km.NextField):
		s.switchFocus()
	case key.Matches(msg, km.Enter):
		// The summary stays single-line; enter hands off to the detail field.
		if s.focus == focusTodo {
			s.switchFocus()
		} else {
			f.InsertRune('\n')
		}
	case key.Matches(msg, km.Left):
		f.MoveLeft()
	case key.Matches(msg, km.Right):
		f.MoveRight()
	case key.Matches(msg, km.Home):
		f.MoveStart()
	case key.Matches(msg, km.End):
		f.MoveEnd()
	case key.Matches(msg, km.Backspace):
		f.Backspace()
	case key.Matches(msg, km.DeleteChar):
		f.Delete()
	default:
		if msg.Type == tea.KeySpace {
			f.InsertRune(' ')
		} else if msg.Type == tea.KeyRunes && !msg.Alt {
			for _, r := range msg.Runes {
				f.InsertRune(r)
			}
		}
	}
	return m, nil
}

// saveEdit commits the open session to the list and closes the popup. A
// summary of only whitespace is not a todo; the popup stays open so the text
// is not lost.
func (m *Model) saveEdit() {
	s := m.edit
	if strings.TrimSpace(s.todo.Value()) == "" {
		return
	}

	if s.index < 0 {
		m.list.Add(s.item())
	} else {
		m.list.SetSelected(s.item())
	}
	m.edit = nil
	m.persist()
	m.refreshList()
}
