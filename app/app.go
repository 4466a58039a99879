// Package app wires the todo list and the field editor into a Bubble Tea
// program: a scrolling list view with a centered edit popup composited over
// it.
package app

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tuido/todo"
)

// Model is the root Bubble Tea model.
type Model struct {
	list  todo.List
	store todo.Store

	keys   KeyMap
	styles Styles

	viewport viewport.Model
	width    int
	height   int

	status string

	edit *editSession // nil while the list view is active
}

// New returns a model over items, persisting every mutation through store.
func New(items []todo.Item, store todo.Store) Model {
	return Model{
		list:     todo.NewList(items),
		store:    store,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		viewport: viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.setSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.edit != nil {
			return m.updateEdit(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) setSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	// One row under the box for the help or status line.
	frameW := m.styles.ListBorder.GetHorizontalFrameSize()
	frameH := m.styles.ListBorder.GetVerticalFrameSize()
	m.viewport.Width = maxInt(width-frameW, 0)
	m.viewport.Height = maxInt(height-frameH-1, 0)
	m.refreshList()
	return m
}

// persist writes the list through the store; failures land on the status
// line and the session keeps running.
func (m *Model) persist() {
	if err := m.store.Save(m.list.Items()); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *Model) refreshList() {
	m.viewport.SetContent(m.listContent())
	m.followSelection()
}

// followSelection keeps the selected row inside the viewport.
func (m *Model) followSelection() {
	idx := m.list.SelectedIndex()
	if idx < 0 || m.viewport.Height <= 0 {
		return
	}
	if idx < m.viewport.YOffset {
		m.viewport.SetYOffset(idx)
		return
	}
	if idx >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(idx - m.viewport.Height + 1)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
