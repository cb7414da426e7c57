package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/easy-contacts/internal/contacts"
)

// queryState is a screen's search query and the view derived from it.
// Setting the query recomputes the filtered view synchronously.
type queryState struct {
	roster []contacts.Contact
	value  string
	view   []contacts.Contact
}

func newQueryState(roster []contacts.Contact) queryState {
	return queryState{roster: roster, view: contacts.Filter(roster, "")}
}

// Set updates the query and reports whether the view was recomputed
func (q *queryState) Set(value string) bool {
	if value == q.value {
		return false
	}
	q.value = value
	q.view = contacts.Filter(q.roster, value)
	return true
}

// Suggestion returns a close name when the query matched nothing
func (q *queryState) Suggestion() (string, bool) {
	if len(q.view) > 0 || q.value == "" {
		return "", false
	}
	return contacts.Suggest(q.roster, q.value)
}

// searchBar wraps the text input every screen shows above its content
type searchBar struct {
	input textinput.Model
}

func newSearchBar() searchBar {
	ti := textinput.New()
	ti.Placeholder = "Search Contacts..."
	ti.Prompt = "/ "
	ti.CharLimit = 50
	ti.Width = 30
	ti.TextStyle = lipgloss.NewStyle().Foreground(textColor)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(mutedColor)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	return searchBar{input: ti}
}

func (s *searchBar) Focus() tea.Cmd {
	s.input.Focus()
	return textinput.Blink
}

func (s *searchBar) Blur() { s.input.Blur() }

func (s *searchBar) Focused() bool { return s.input.Focused() }

func (s *searchBar) Value() string { return s.input.Value() }

func (s *searchBar) Clear() { s.input.SetValue("") }

func (s *searchBar) SetWidth(width int) {
	// border, padding and prompt
	s.input.Width = max(10, width-8)
}

func (s *searchBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s searchBar) View(width int) string {
	line := s.input.View()
	if s.input.Value() != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, subtleStyle.Render("  esc ✕"))
	}
	style := searchStyle
	if s.input.Focused() {
		style = focusedSearchStyle
	}
	return style.Width(max(0, width-2)).Render(line)
}
