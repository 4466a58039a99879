package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tuido/todo"
)

func TestView_BeforeFirstWindowSizeIsEmpty(t *testing.T) {
	m := New(nil, todo.NewStore("unused"))
	if got := m.View(); got != "" {
		t.Fatalf("view before sizing: got %q, want empty", got)
	}
}

func TestView_FillsTerminal(t *testing.T) {
	m := newTestModel(t, todo.Item{Todo: "one"})
	view := m.View()
	if got, want := lipgloss.Height(view), 24; got != want {
		t.Fatalf("height: got %d, want %d", got, want)
	}
	if got, want := lipgloss.Width(view), 80; got != want {
		t.Fatalf("width: got %d, want %d", got, want)
	}
}

func TestView_RowsCarryStatusCheckboxes(t *testing.T) {
	m := newTestModel(t,
		todo.Item{Todo: "buy milk"},
		todo.Item{Status: todo.StatusCompleted, Todo: "call home"},
	)
	view := m.View()
	if !strings.Contains(view, "☐ buy milk") {
		t.Fatalf("missing open item row in:\n%s", view)
	}
	if !strings.Contains(view, "✓ call home") {
		t.Fatalf("missing completed item row in:\n%s", view)
	}
}

func TestView_EmptyListShowsHint(t *testing.T) {
	m := newTestModel(t)
	if view := m.View(); !strings.Contains(view, "Nothing to do. Press a to add an item.") {
		t.Fatalf("missing empty hint in:\n%s", view)
	}
}

func TestView_TitleSitsOnTopBorder(t *testing.T) {
	m := newTestModel(t, todo.Item{Todo: "one"})
	topRow := strings.SplitN(m.View(), "\n", 2)[0]
	if !strings.Contains(topRow, " TODO ") {
		t.Fatalf("missing title on top border: %q", topRow)
	}
}

func TestView_BottomRowShowsHelp(t *testing.T) {
	m := newTestModel(t, todo.Item{Todo: "one"})
	rows := strings.Split(m.View(), "\n")
	bottom := rows[len(rows)-1]
	for _, want := range []string{"a add", "e edit", "x toggle", "q quit"} {
		if !strings.Contains(bottom, want) {
			t.Fatalf("help line missing %q: %q", want, bottom)
		}
	}
}

func TestView_StatusReplacesHelp(t *testing.T) {
	m := newTestModel(t, todo.Item{Todo: "one"})
	m.status = "todo: write /nope/todos.json: permission denied"

	rows := strings.Split(m.View(), "\n")
	bottom := rows[len(rows)-1]
	if !strings.Contains(bottom, "permission denied") {
		t.Fatalf("status missing from bottom row: %q", bottom)
	}
	if strings.Contains(bottom, "a add") {
		t.Fatalf("help should be hidden while a status is shown: %q", bottom)
	}
}

func TestView_AddPopupOverlaysList(t *testing.T) {
	m := newTestModel(t)
	m = sendMsg(t, m, keyRune('a'))
	view := m.View()

	if !strings.Contains(view, "New Todo") {
		t.Fatalf("missing popup title in:\n%s", view)
	}
	if !strings.Contains(view, " INSERT Mode ") {
		t.Fatalf("missing mode footer in:\n%s", view)
	}
	if got, want := lipgloss.Height(view), 24; got != want {
		t.Fatalf("popup must not grow the frame: got %d, want %d", got, want)
	}
}

func TestView_EditPopupTitleAndModeFollowSession(t *testing.T) {
	m := newTestModel(t, todo.Item{Todo: "one"})
	m = sendMsg(t, m, keyRune('j'))
	m = sendMsg(t, m, keyRune('e'))
	view := m.View()

	if !strings.Contains(view, "Edit Todo") {
		t.Fatalf("missing popup title in:\n%s", view)
	}
	if !strings.Contains(view, " NORMAL Mode ") {
		t.Fatalf("missing mode footer in:\n%s", view)
	}

	m = sendMsg(t, m, keyRune('i'))
	if view := m.View(); !strings.Contains(view, " INSERT Mode ") {
		t.Fatalf("footer should follow the mode in:\n%s", view)
	}
}

func TestView_EditPopupHasFixedBox(t *testing.T) {
	m := newTestModel(t)
	m = sendMsg(t, m, keyRune('a'))
	popup := m.editView()

	if got, want := lipgloss.Height(popup), editBoxHeight; got != want {
		t.Fatalf("popup height: got %d, want %d", got, want)
	}
	if got, want := lipgloss.Width(popup), editBoxWidth; got != want {
		t.Fatalf("popup width: got %d, want %d", got, want)
	}
}

func TestView_PopupTypingShowsInSummaryRow(t *testing.T) {
	m := newTestModel(t)
	m = sendMsg(t, m, keyRune('a'))
	m = typeString(t, m, "water plants")

	if view := m.View(); !strings.Contains(view, "water plants") {
		t.Fatalf("typed text missing from view:\n%s", view)
	}
}
