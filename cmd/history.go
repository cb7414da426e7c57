package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history [id|name]",
	Short:   "Show recent calls and announcements",
	GroupID: "contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		contactID := ""
		if len(args) > 0 {
			c, err := lookup(args)
			if err != nil {
				return err
			}
			contactID = c.ID
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.history == nil {
			return errors.New("call history is disabled or unavailable (see [history] in the config)")
		}

		limit, _ := cmd.Flags().GetInt("limit")
		recent, err := a.history.RecentInteractions(contactID, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(recent) == 0 {
			fmt.Fprintln(out, "No history yet")
			return nil
		}
		for _, i := range recent {
			fmt.Fprintln(out, historyLine(i))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}
