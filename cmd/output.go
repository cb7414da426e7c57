package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/pdxmph/easy-contacts/internal/contacts"
	"github.com/pdxmph/easy-contacts/internal/db"
)

const (
	defaultWidth = 80
	minWidth     = 20
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3B30")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// terminalWidth returns the current terminal width or a fallback when unavailable
func terminalWidth(fallback int) int {
	if fallback <= 0 {
		fallback = defaultWidth
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if parsed, err := strconv.Atoi(cols); err == nil && parsed > 0 {
			return parsed
		}
	}

	return fallback
}

// isTerminal reports whether stdin is interactive
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// renderMarkdown renders markdown using Glamour with terminal-aware wrapping
func renderMarkdown(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if width < minWidth {
		width = minWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(rendered, "\n"), nil
}

// contactTable renders contacts in roster order. counts may be nil.
func contactTable(list []contacts.Contact, counts map[string]int) string {
	headers := []string{"ID", "NAME", "RELATION", "PHONE"}
	if counts != nil {
		headers = append(headers, "CALLS")
	}

	rows := make([][]string, 0, len(list))
	for _, c := range list {
		row := []string{c.ID, c.Name, c.Relation, c.DisplayPhone}
		if counts != nil {
			row = append(row, strconv.Itoa(counts[c.ID]))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// contactMarkdown formats one contact as a markdown card
func contactMarkdown(c contacts.Contact, recent []db.Interaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	fmt.Fprintf(&b, "*%s*\n\n", c.Relation)
	fmt.Fprintf(&b, "- **Phone:** %s (`%s`)\n", c.DisplayPhone, c.Phone)
	if c.Email != "" {
		fmt.Fprintf(&b, "- **Email:** %s\n", c.Email)
	}
	fmt.Fprintf(&b, "- **ID:** %s\n", c.ID)

	if len(recent) > 0 {
		b.WriteString("\n## Recent\n\n")
		for _, i := range recent {
			fmt.Fprintf(&b, "- %s %s", i.CreatedAt.Local().Format("2006-01-02 15:04"), i.Kind)
			if i.Screen.Valid {
				fmt.Fprintf(&b, " (%s)", i.Screen.String)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// historyLine formats one interaction for the history command
func historyLine(i db.Interaction) string {
	when := i.CreatedAt.Local().Format("2006-01-02 15:04")
	line := fmt.Sprintf("%s  %-8s %s", when, i.Kind, i.ContactName)
	if i.Phone.Valid {
		line += " " + mutedStyle.Render(i.Phone.String)
	}
	if i.Screen.Valid {
		line += " " + mutedStyle.Render("["+i.Screen.String+"]")
	}
	return line
}
