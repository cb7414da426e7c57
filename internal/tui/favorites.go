package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pdxmph/easy-contacts/internal/carousel"
	"github.com/pdxmph/easy-contacts/internal/contacts"
)

const (
	screenFavorites = "favorites"

	// rows moved per wheel notch
	wheelStep = 2.0

	maxCardWidth = 56
)

// favoritesScreen shows the filtered contacts as a vertical stack of cards.
// The card nearest the scroll offset is centred; after scrolling comes to
// rest it is announced once.
type favoritesScreen struct {
	keys        keyMap
	act         actions
	search      searchBar
	query       queryState
	track       carousel.Track
	cardHeight  int
	spacing     int
	settleDelay time.Duration
	announced   int // generation last announced
}

func newFavoritesScreen(roster []contacts.Contact, opts Options, act actions) favoritesScreen {
	q := newQueryState(roster)
	return favoritesScreen{
		keys:        defaultKeyMap(),
		act:         act,
		search:      newSearchBar(),
		query:       q,
		track:       carousel.NewTrack(float64(opts.CardHeight+opts.Spacing), len(q.view)),
		cardHeight:  opts.CardHeight,
		spacing:     opts.Spacing,
		settleDelay: opts.SettleDelay,
		announced:   -1,
	}
}

// Current returns the centred contact, if any
func (s *favoritesScreen) Current() (contacts.Contact, bool) {
	if len(s.query.view) == 0 {
		return contacts.Contact{}, false
	}
	return s.query.view[carousel.NearestIndex(s.track.Offset(), s.track.Stride, len(s.query.view))], true
}

func (s favoritesScreen) update(msg tea.Msg) (favoritesScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.gen != s.track.Gen() || msg.gen == s.announced {
			return s, nil
		}
		if !s.track.Step() {
			return s, frameCmd(msg.gen)
		}
		cmd := s.settle()
		return s, cmd

	case settleMsg:
		if msg.gen != s.track.Gen() || len(s.query.view) == 0 {
			return s, nil
		}
		if !s.track.Aligned() {
			cmd := frameCmd(s.track.SnapTo(s.track.Index()))
			return s, cmd
		}
		cmd := s.settle()
		return s, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || len(s.query.view) == 0 {
			return s, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			cmd := settleCmd(s.track.ScrollBy(wheelStep), s.settleDelay)
			return s, cmd
		case tea.MouseButtonWheelUp:
			cmd := settleCmd(s.track.ScrollBy(-wheelStep), s.settleDelay)
			return s, cmd
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

func (s favoritesScreen) updateSearch(msg tea.KeyMsg) (favoritesScreen, tea.Cmd) {
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
	case "up", "down":
		return s.handleKey(msg)
	}

	cmd := s.search.Update(msg)
	s.applyQuery()
	return s, cmd
}

func (s favoritesScreen) handleKey(msg tea.KeyMsg) (favoritesScreen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Search):
		cmd := s.search.Focus()
		return s, cmd

	case key.Matches(msg, s.keys.Clear):
		if s.search.Value() != "" {
			s.search.Clear()
			s.applyQuery()
		}
		return s, nil

	case key.Matches(msg, s.keys.Down):
		return s.snapBy(1)

	case key.Matches(msg, s.keys.Up):
		return s.snapBy(-1)

	case key.Matches(msg, s.keys.First):
		return s.snapTo(0)

	case key.Matches(msg, s.keys.Last):
		return s.snapTo(len(s.query.view) - 1)

	case key.Matches(msg, s.keys.Call):
		if c, ok := s.Current(); ok {
			return s, s.act.call(c, "Calling "+c.Name, screenFavorites)
		}
	}
	return s, nil
}

func (s favoritesScreen) snapBy(delta int) (favoritesScreen, tea.Cmd) {
	if len(s.query.view) == 0 {
		return s, nil
	}
	// step from where the track is heading, not where it is
	from := carousel.NearestIndex(s.track.Target(), s.track.Stride, len(s.query.view))
	return s.snapTo(from + delta)
}

func (s favoritesScreen) snapTo(index int) (favoritesScreen, tea.Cmd) {
	n := len(s.query.view)
	if n == 0 {
		return s, nil
	}
	index = max(0, min(index, n-1))
	if float64(index)*s.track.Stride == s.track.Target() && s.track.Offset() == s.track.Target() {
		return s, nil
	}
	cmd := frameCmd(s.track.SnapTo(index))
	return s, cmd
}

// settle fires the announcement for the card the track came to rest on,
// once per generation
func (s *favoritesScreen) settle() tea.Cmd {
	gen := s.track.Gen()
	if gen == s.announced {
		return nil
	}
	c, ok := s.Current()
	if !ok {
		return nil
	}
	s.announced = gen
	return s.act.announce(c, screenFavorites)
}

// applyQuery recomputes the view from the search input; a changed view
// puts the track back on the first card without announcing.
func (s *favoritesScreen) applyQuery() {
	if s.query.Set(s.search.Value()) {
		s.track.Reset(len(s.query.view))
	}
}

func (s favoritesScreen) view(width, height int) string {
	bar := s.search.View(width)
	body := height - lipgloss.Height(bar)
	if body <= 0 {
		return bar
	}
	if len(s.query.view) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, bar, emptyView(&s.query, width, body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, s.viewCards(width, body))
}

// viewCards lays every card out on a virtual strip and cuts the window that
// starts at the scroll offset. Padding above the first card keeps the
// current card vertically centred.
func (s favoritesScreen) viewCards(width, height int) string {
	pad := max(0, (height-s.cardHeight)/2)
	offset := s.track.Offset()
	current := carousel.NearestIndex(offset, s.track.Stride, len(s.query.view))

	lines := make([]string, pad, pad+len(s.query.view)*(s.cardHeight+s.spacing)+height)
	for i, c := range s.query.view {
		if i > 0 {
			for range s.spacing {
				lines = append(lines, "")
			}
		}
		t := carousel.CardTransform(offset, s.track.Stride, i)
		card := renderCard(c, t, width, s.cardHeight, i == current)
		lines = append(lines, card...)
	}
	for range height {
		lines = append(lines, "")
	}

	start := max(0, min(int(math.Round(offset)), len(lines)))
	end := min(len(lines), start+height)
	return strings.Join(lines[start:end], "\n")
}

// renderCard renders exactly height lines, scaled and faded by t
func renderCard(c contacts.Contact, t carousel.Transform, width, height int, current bool) []string {
	full := min(maxCardWidth, int(float64(width)*0.85))
	w := max(12, int(math.Round(float64(full)*t.Scale)))
	inner := w - 4

	fg := fadeColor(t.Opacity)
	border := lipgloss.Color("240")
	if current {
		border = accentColor
	}

	call := callButtonStyle.Render("☎")
	phone := ansi.Truncate(c.DisplayPhone, max(0, inner-lipgloss.Width(call)-1), "…")
	gap := max(1, inner-lipgloss.Width(phone)-lipgloss.Width(call))

	content := strings.Join([]string{
		relationStyle.Render(ansi.Truncate(strings.ToUpper(c.Relation), inner, "…")),
		nameStyle.Foreground(fg).Render(ansi.Truncate(c.Name, inner, "…")),
		relationStyle.Render("────"),
		lipgloss.NewStyle().Foreground(fg).Render(phone) + strings.Repeat(" ", gap) + call,
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(surfaceColor).
		Padding(0, 1).
		Width(w - 2).
		Height(max(0, height-2)).
		AlignVertical(lipgloss.Bottom).
		Render(content)

	return fitLines(lipgloss.PlaceHorizontal(width, lipgloss.Center, box), height)
}

// fitLines splits s into exactly n lines, trimming from the top so that the
// bottom-aligned content survives on short cards.
func fitLines(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// emptyView is the "no matches" state shared by both screens
func emptyView(q *queryState, width, height int) string {
	msg := emptyStyle.Render("No matches found")
	if name, ok := q.Suggestion(); ok {
		msg = lipgloss.JoinVertical(lipgloss.Center, msg, subtleStyle.Render("Did you mean "+name+"?"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
