package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("confirmation required: run interactively or pass --yes")

var callCmd = &cobra.Command{
	Use:     "call <id|name>",
	Short:   "Call a contact",
	GroupID: "contacts",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookup(args)
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			if !isTerminal() {
				return errNotConfirmed
			}
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Call %s?", c.Name)).
				Description(c.DisplayPhone).
				Affirmative("Call").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				return fmt.Errorf("confirming call: %w", err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Calling %s…\n", c.Name)
		return a.device.Call(cmd.Context(), c, "Calling "+c.Name, "cli")
	},
}

func init() {
	callCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(callCmd)
}
