package app

import "github.com/charmbracelet/lipgloss"

// Styles bundles every lipgloss style the app renders with.
type Styles struct {
	ListBorder  lipgloss.Style
	Title       lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
	Status      lipgloss.Style

	EditBorder    lipgloss.Style
	EditTitle     lipgloss.Style
	EditSeparator lipgloss.Style
	EditFooter    lipgloss.Style
}

func DefaultStyles() Styles {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Styles{
		ListBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		Title:       lipgloss.NewStyle().Bold(true),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Empty:       dim,
		Help:        dim,
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		EditBorder:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		EditTitle:     lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		EditSeparator: dim,
		EditFooter:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
