package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdxmph/easy-contacts/internal/device"
)

var backendsCmd = &cobra.Command{
	Use:     "backends",
	Short:   "List dialer and speech backends",
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Dialers:")
		for _, name := range device.ListDialers() {
			d, err := device.CreateDialer(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, backendLine(name, d.IsEnabled(), name == a.device.Dialer().Name()))
		}

		fmt.Fprintln(out, "Speakers:")
		for _, name := range device.ListSpeakers() {
			s, err := device.CreateSpeaker(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, backendLine(name, s.IsEnabled(), name == a.device.Speaker().Name()))
		}
		return nil
	},
}

func backendLine(name string, enabled, selected bool) string {
	mark := "  "
	if selected {
		mark = "* "
	}
	status := "available"
	if !enabled {
		status = mutedStyle.Render("unavailable")
	}
	return fmt.Sprintf("  %s%-10s %s", mark, name, status)
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
