package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pdxmph/easy-contacts/internal/contacts"
)

const screenAll = "all"

// rows per contact: the row itself and a separator
const rowHeight = 2

// listScreen shows the filtered contacts as selectable rows
type listScreen struct {
	keys     keyMap
	act      actions
	search   searchBar
	query    queryState
	selected int
}

func newListScreen(roster []contacts.Contact, act actions) listScreen {
	return listScreen{
		keys:   defaultKeyMap(),
		act:    act,
		search: newSearchBar(),
		query:  newQueryState(roster),
	}
}

// Current returns the selected contact, if any
func (s *listScreen) Current() (contacts.Contact, bool) {
	if len(s.query.view) == 0 {
		return contacts.Contact{}, false
	}
	return s.query.view[s.selected], true
}

func (s listScreen) update(msg tea.Msg) (listScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return s, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			s.move(1)
		case tea.MouseButtonWheelUp:
			s.move(-1)
		}
		return s, nil

	case tea.KeyMsg:
		if s.search.Focused() {
			return s.updateSearch(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s listScreen) updateSearch(msg tea.KeyMsg) (listScreen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.search.Clear()
		s.search.Blur()
		s.applyQuery()
		return s, nil
	case "enter":
		s.search.Blur()
		return s, nil
	case "ctrl+u":
		s.search.Clear()
		s.applyQuery()
		return s, nil
	case "up":
		s.move(-1)
		return s, nil
	case "down":
		s.move(1)
		return s, nil
	}

	cmd := s.search.Update(msg)
	s.applyQuery()
	return s, cmd
}

func (s listScreen) handleKey(msg tea.KeyMsg) (listScreen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Search):
		cmd := s.search.Focus()
		return s, cmd

	case key.Matches(msg, s.keys.Clear):
		if s.search.Value() != "" {
			s.search.Clear()
			s.applyQuery()
		}

	case key.Matches(msg, s.keys.Down):
		s.move(1)

	case key.Matches(msg, s.keys.Up):
		s.move(-1)

	case key.Matches(msg, s.keys.First):
		s.selected = 0

	case key.Matches(msg, s.keys.Last):
		s.selected = max(0, len(s.query.view)-1)

	case key.Matches(msg, s.keys.Call):
		if c, ok := s.Current(); ok {
			return s, s.act.call(c, c.Name, screenAll)
		}
	}
	return s, nil
}

func (s *listScreen) move(delta int) {
	s.selected = clampSelection(s.selected+delta, len(s.query.view))
}

func (s *listScreen) applyQuery() {
	if s.query.Set(s.search.Value()) {
		s.selected = clampSelection(s.selected, len(s.query.view))
	}
}

func clampSelection(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (s listScreen) view(width, height int) string {
	bar := s.search.View(width)
	body := height - lipgloss.Height(bar)
	if body <= 0 {
		return bar
	}
	if len(s.query.view) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, bar, emptyView(&s.query, width, body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, s.renderRows(width, body))
}

func (s listScreen) renderRows(width, height int) string {
	header := subtleStyle.Render(fmt.Sprintf("Contacts (%d)", len(s.query.view)))
	lines := []string{header}

	visible := max(1, (height-1)/rowHeight)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.query.view) && i < start+visible; i++ {
		lines = append(lines, renderRow(s.query.view[i], width, i == s.selected))
		lines = append(lines, subtleStyle.Render(strings.Repeat("─", max(0, width))))
	}
	return strings.Join(lines, "\n")
}

func renderRow(c contacts.Contact, width int, selected bool) string {
	avatar := avatarStyle.Render(c.Initials())
	call := callButtonStyle.Render("☎")

	textWidth := max(0, width-lipgloss.Width(avatar)-lipgloss.Width(call)-3)
	name := nameStyle.Render(ansi.Truncate(c.Name, textWidth, "…"))
	relation := subtleStyle.Render(ansi.Truncate(c.Relation, max(0, textWidth-lipgloss.Width(name)-3), "…"))
	text := name + subtleStyle.Render(" · ") + relation

	gap := max(1, width-lipgloss.Width(avatar)-lipgloss.Width(text)-lipgloss.Width(call)-1)
	row := avatar + " " + text + strings.Repeat(" ", gap) + call
	if selected {
		return selectedRowStyle.Width(width).Render(row)
	}
	return row
}
