package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pdxmph/easy-contacts/internal/config"
	"github.com/pdxmph/easy-contacts/internal/tui"
)

var version = "dev"

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "easy-contacts",
	Short: "Large-print contact picker with one-key calling",
	Long: `easy-contacts - A contact picker for the terminal.

Favorites shows a scrolling stack of cards and reads out the name of the
card that comes to rest. All Contacts is a plain list. Either screen hands
the selected number to the system dialer.`,
	SilenceUsage: true,
	RunE:         runUI,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().String("view", "", "start on this screen: favorites or all (default from config)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "contacts", Title: "Contact Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default "+config.DefaultPath()+")")
	fs.Bool("verbose", false, "log at debug level")
	fs.Bool("no-speech", false, "disable spoken announcements")
	fs.String("dialer", "", "dialer backend (see 'easy-contacts backends')")
	fs.String("speaker", "", "speech backend (see 'easy-contacts backends')")
}

func runUI(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tab, err := startTab(cmd, a.cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := tui.New(ctx, tui.Options{
		Device:      a.device,
		Logger:      a.logger,
		StartTab:    tab,
		CardHeight:  a.cfg.UI.CardHeight,
		Spacing:     a.cfg.UI.Spacing,
		SettleDelay: time.Duration(a.cfg.UI.SettleMS) * time.Millisecond,
	})

	a.logger.Debug("starting ui")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func startTab(cmd *cobra.Command, cfg *config.Config) (tui.Tab, error) {
	view, _ := cmd.Flags().GetString("view")
	if view == "" {
		view = cfg.UI.DefaultView
	}
	switch view {
	case config.ViewFavorites:
		return tui.TabFavorites, nil
	case config.ViewAll:
		return tui.TabAll, nil
	}
	return 0, fmt.Errorf("unknown view %q (want %s or %s)", view, config.ViewFavorites, config.ViewAll)
}
