package app

import (
	"github.com/iw2rmb/tuido/field"
	"github.com/iw2rmb/tuido/todo"
)

type editFocus int

const (
	focusTodo editFocus = iota
	focusInfo
)

type editMode int

const (
	modeNormal editMode = iota
	modeInsert
)

// editSession holds the state behind the edit popup: one single-line field
// for the summary, one multiline field for the detail text. Its presence on
// the Model decides the active view.
type editSession struct {
	todo field.Field
	info field.Field

	focus editFocus
	mode  editMode

	status todo.Status
	index  int // list index being edited, -1 for a new item
}

// newEditSession opens an edit session over it. Stored files may carry text
// the editor itself would reject; the error keeps such items out of a session
// that could not rewrite them faithfully.
func newEditSession(it todo.Item, index int) (*editSession, error) {
	s := &editSession{
		todo:   field.New(field.Config{Wrap: field.WrapWord, SingleLine: true, Style: field.DefaultStyle()}),
		info:   field.New(field.Config{Wrap: field.WrapWord, Style: field.DefaultStyle()}),
		status: it.Status,
		index:  index,
	}
	if err := s.todo.SetValue(it.Todo); err != nil {
		return nil, err
	}
	if err := s.info.SetValue(it.Info); err != nil {
		return nil, err
	}
	s.todo.Focus()
	return s, nil
}

// item assembles the edited todo entry, preserving its completion status.
func (s *editSession) item() todo.Item {
	return todo.Item{
		Status: s.status,
		Todo:   s.todo.Value(),
		Info:   s.info.Value(),
	}
}

func (s *editSession) focused() *field.Field {
	if s.focus == focusInfo {
		return &s.info
	}
	return &s.todo
}

func (s *editSession) switchFocus() {
	if s.focus == focusTodo {
		s.focus = focusInfo
		s.todo.Blur()
		s.info.Focus()
		return
	}
	s.focus = focusTodo
	s.info.Blur()
	s.todo.Focus()
}

// cycleInfoWrap steps the info field through word, char and no wrapping.
func (s *editSession) cycleInfoWrap() {
	switch s.info.Wrap() {
	case field.WrapWord:
		s.info.SetWrap(field.WrapChar)
	case field.WrapChar:
		s.info.SetWrap(field.WrapNone)
	default:
		s.info.SetWrap(field.WrapWord)
	}
}
