package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdxmph/easy-contacts/internal/contacts"
	"github.com/pdxmph/easy-contacts/internal/db"
)

var showCmd = &cobra.Command{
	Use:     "show <id|name>",
	Short:   "Show one contact",
	GroupID: "contacts",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookup(args)
		if err != nil {
			return err
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		var recent []db.Interaction
		if a.history != nil {
			recent, err = a.history.RecentInteractions(c.ID, 5)
			if err != nil {
				return err
			}
		}

		rendered, err := renderMarkdown(contactMarkdown(c, recent), terminalWidth(defaultWidth))
		if err != nil {
			return fmt.Errorf("rendering contact: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// lookup resolves command arguments to one roster contact, suggesting a
// close name when nothing matches
func lookup(args []string) (contacts.Contact, error) {
	key := strings.Join(args, " ")
	c, err := contacts.Lookup(contacts.Roster(), key)
	if err != nil {
		if name, ok := contacts.Suggest(contacts.Roster(), key); ok {
			return c, fmt.Errorf("%w (did you mean %s?)", err, name)
		}
		return c, err
	}
	return c, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
