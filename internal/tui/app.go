package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pdxmph/easy-contacts/internal/contacts"
)

// Tab identifies one of the two screens
type Tab int

const (
	TabFavorites Tab = iota
	TabAll
)

var tabTitles = []string{"Favorites", "All Contacts"}

// Options configures the application model
type Options struct {
	Device      Device
	Logger      *zap.Logger
	Roster      []contacts.Contact
	StartTab    Tab
	CardHeight  int
	Spacing     int
	SettleDelay time.Duration
}

// Model represents the main application state
type Model struct {
	keys      keyMap
	help      help.Model
	tab       Tab
	favorites favoritesScreen
	all       listScreen
	width     int
	height    int
	status    string
}

// New creates a new application model
func New(ctx context.Context, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Roster == nil {
		opts.Roster = contacts.Roster()
	}
	if opts.CardHeight < 5 {
		opts.CardHeight = 9
	}
	if opts.Spacing < 0 {
		opts.Spacing = 0
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = 150 * time.Millisecond
	}
	if opts.StartTab != TabAll {
		opts.StartTab = TabFavorites
	}

	act := actions{ctx: ctx, device: opts.Device, logger: opts.Logger}

	h := help.New()
	h.ShortSeparator = " • "

	return Model{
		keys:      defaultKeyMap(),
		help:      h,
		tab:       opts.StartTab,
		favorites: newFavoritesScreen(opts.Roster, opts, act),
		all:       newListScreen(opts.Roster, act),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Tab returns the active tab
func (m Model) Tab() Tab { return m.tab }

// Status returns the status line text
func (m Model) Status() string { return m.status }

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.favorites.search.SetWidth(msg.Width)
		m.all.search.SetWidth(msg.Width)
		return m, nil

	case frameMsg, settleMsg:
		// carousel timers keep running while the list tab is shown
		var cmd tea.Cmd
		m.favorites, cmd = m.favorites.update(msg)
		return m, cmd

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.MouseMsg:
		return m.updateActive(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searching() {
			return m.updateActive(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % Tab(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Favorites):
			m.tab = TabFavorites
			return m, nil
		case key.Matches(msg, m.keys.All):
			m.tab = TabAll
			return m, nil
		}
		return m.updateActive(msg)
	}

	return m.updateActive(msg)
}

func (m Model) searching() bool {
	if m.tab == TabAll {
		return m.all.search.Focused()
	}
	return m.favorites.search.Focused()
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.tab == TabAll {
		m.all, cmd = m.all.update(msg)
	} else {
		m.favorites, cmd = m.favorites.update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	tabs := m.renderTabs()
	footer := m.renderFooter()
	body := max(0, m.height-lipgloss.Height(tabs)-lipgloss.Height(footer))

	var content string
	if m.tab == TabAll {
		content = m.all.view(m.width, body)
	} else {
		content = m.favorites.view(m.width, body)
	}
	content = lipgloss.NewStyle().Height(body).MaxHeight(body).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, content, footer)
}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = tabStyle.Render(title)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderFooter() string {
	lines := []string{}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}
