package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdxmph/easy-contacts/internal/contacts"
)

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls"},
	Short:   "List contacts whose name contains query",
	GroupID: "contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		query := strings.Join(args, " ")
		list := contacts.Filter(contacts.Roster(), query)
		out := cmd.OutOrStdout()

		if len(list) == 0 {
			fmt.Fprintln(out, "No matches found")
			if name, ok := contacts.Suggest(contacts.Roster(), query); ok {
				fmt.Fprintf(out, "Did you mean %s?\n", name)
			}
			return nil
		}

		var counts map[string]int
		if withCalls, _ := cmd.Flags().GetBool("calls"); withCalls && a.history != nil {
			counts, err = a.history.CallCounts()
			if err != nil {
				a.logger.Warn("reading call counts", zap.Error(err))
			}
		}

		fmt.Fprintln(out, contactTable(list, counts))
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("calls", false, "include the number of calls placed to each contact")
	rootCmd.AddCommand(listCmd)
}
