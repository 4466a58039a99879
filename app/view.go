package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/tuido/todo"
)

const (
	editBoxWidth  = 40
	editBoxHeight = 15
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	base := m.listView()
	if m.edit == nil {
		return base
	}
	return overlay.Composite(m.editView(), base, overlay.Center, overlay.Center, 0, 0)
}

func (m Model) listView() string {
	box := m.styles.ListBorder.
		Width(m.viewport.Width).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	box = overlay.Composite(m.styles.Title.Render(" TODO "), box, overlay.Center, overlay.Top, 0, 0)

	bottom := m.helpLine()
	if m.status != "" {
		bottom = m.styles.Status.Render(truncateRow(m.status, m.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, bottom)
}

func (m Model) listContent() string {
	width := m.viewport.Width
	if width <= 0 {
		return ""
	}
	if m.list.Len() == 0 {
		return m.styles.Empty.Render(truncateRow("Nothing to do. Press a to add an item.", width))
	}

	rows := make([]string, 0, m.list.Len())
	for i := 0; i < m.list.Len(); i++ {
		it := m.list.At(i)
		row := truncateRow(checkbox(it.Status)+it.Todo, width)
		style := m.styles.Row
		if i == m.list.SelectedIndex() {
			style = m.styles.SelectedRow
		}
		rows = append(rows, style.Width(width).Render(row))
	}
	return strings.Join(rows, "\n")
}

func checkbox(s todo.Status) string {
	if s == todo.StatusCompleted {
		return "✓ "
	}
	return "☐ "
}

// truncateRow keeps a row within width terminal cells. Stored text may carry
// wide characters even though the editor only produces ASCII.
func truncateRow(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func (m Model) helpLine() string {
	km := m.keys
	bindings := []key.Binding{km.Add, km.Edit, km.Toggle, km.Delete, km.Down, km.Up, km.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(truncateRow(strings.Join(parts, " │ "), m.width))
}

func (m Model) editView() string {
	s := m.edit

	innerWidth := editBoxWidth - 2
	infoHeight := editBoxHeight - 6 // borders, title, summary row, separator, footer

	title := "Edit Todo"
	if s.index < 0 {
		title = "New Todo"
	}

	footer := " NORMAL Mode "
	if s.mode == modeInsert {
		footer = " INSERT Mode "
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.EditTitle.Width(innerWidth).Render(title),
		s.todo.View(innerWidth, 1),
		m.styles.EditSeparator.Render(strings.Repeat("─", innerWidth)),
		s.info.View(innerWidth, infoHeight),
		m.styles.EditFooter.Render(footer),
	)
	return m.styles.EditBorder.Render(body)
}
