package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/easy-contacts/internal/config"
	"github.com/pdxmph/easy-contacts/internal/contacts"
	"github.com/pdxmph/easy-contacts/internal/db"
	"github.com/pdxmph/easy-contacts/internal/device"
	"github.com/pdxmph/easy-contacts/internal/tui"
)

// writeTestConfig writes a config that keeps everything inside a temp dir
// and uses the noop backends
func writeTestConfig(t *testing.T) (cfgPath, historyPath string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "config.toml")
	historyPath = filepath.Join(dir, "history.db")

	body := fmt.Sprintf(`
[speech]
enabled = false

[dialer]
backend = "noop"

[history]
enabled = true
path = %q

[log]
path = ""
`, historyPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))
	return cfgPath, historyPath
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func runCLI(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", cfgPath))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListFiltersInRosterOrder(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)

	out, err := runCLI(t, cfgPath, "list", "a")
	require.NoError(t, err)

	aijaz := strings.Index(out, "Aijaz")
	james := strings.Index(out, "James Cooper")
	mia := strings.Index(out, "Mia Wong")
	require.True(t, aijaz >= 0 && james >= 0 && mia >= 0, out)
	assert.Less(t, aijaz, james)
	assert.Less(t, james, mia)
	assert.NotContains(t, out, "Syed")
	assert.NotContains(t, out, "Hunain")
}

func TestListNoMatchSuggests(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)

	out, err := runCLI(t, cfgPath, "list", "hunian")
	require.NoError(t, err)
	assert.Contains(t, out, "No matches found")
	assert.Contains(t, out, "Did you mean Hunain?")
}

func TestListWithCallCounts(t *testing.T) {
	cfgPath, historyPath := writeTestConfig(t)

	history, err := db.Open(historyPath)
	require.NoError(t, err)
	_, err = history.LogInteraction(db.Interaction{
		ContactID: "1", ContactName: "Syed", Kind: db.KindCall,
		Phone: db.NewNullString("+15550192834"),
	})
	require.NoError(t, err)
	require.NoError(t, history.Close())

	out, err := runCLI(t, cfgPath, "list", "--calls")
	require.NoError(t, err)
	assert.Contains(t, out, "CALLS")
}

func TestShowRendersContact(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)

	out, err := runCLI(t, cfgPath, "show", "syed")
	require.NoError(t, err)
	assert.Contains(t, out, "Syed")
	assert.Contains(t, out, "Creative Director")
	assert.Contains(t, out, "+1 (555) 019-2834")
}

func TestShowUnknownContact(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)

	_, err := runCLI(t, cfgPath, "show", "jmes")
	require.ErrorIs(t, err, contacts.ErrNotFound)
	assert.Contains(t, err.Error(), "did you mean James Cooper?")
}

func TestCallWithNoopDialer(t *testing.T) {
	cfgPath, historyPath := writeTestConfig(t)

	out, err := runCLI(t, cfgPath, "call", "2", "--yes")
	require.ErrorIs(t, err, device.ErrUnavailable)
	assert.Contains(t, out, "Calling Hunain…")

	// nothing was handed off, so nothing is recorded
	history, err := db.Open(historyPath)
	require.NoError(t, err)
	defer history.Close()
	recent, err := history.RecentInteractions("", 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestHistory(t *testing.T) {
	cfgPath, historyPath := writeTestConfig(t)

	out, err := runCLI(t, cfgPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No history yet")

	history, err := db.Open(historyPath)
	require.NoError(t, err)
	for _, c := range contacts.Roster()[:2] {
		_, err := history.LogInteraction(db.Interaction{
			ContactID:   c.ID,
			ContactName: c.Name,
			Phone:       db.NewNullString(c.Phone),
			Kind:        db.KindCall,
			Screen:      db.NewNullString("all"),
		})
		require.NoError(t, err)
	}
	require.NoError(t, history.Close())

	out, err = runCLI(t, cfgPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Syed")
	assert.Contains(t, out, "Hunain")

	out, err = runCLI(t, cfgPath, "history", "hunain")
	require.NoError(t, err)
	assert.Contains(t, out, "Hunain")
	assert.NotContains(t, out, "Syed")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := runCLI(t, path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().UI, cfg.UI)

	_, err = runCLI(t, path, "config", "init")
	assert.Error(t, err)

	_, err = runCLI(t, path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestBackendsListsRegistered(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)

	out, err := runCLI(t, cfgPath, "backends")
	require.NoError(t, err)
	for _, name := range []string{"noop", "opener", "espeak-ng", "spd-say", "say"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "* noop")
}

func TestStartTab(t *testing.T) {
	cfg := config.Default()
	t.Cleanup(func() { resetFlags(rootCmd) })

	tab, err := startTab(rootCmd, cfg)
	require.NoError(t, err)
	assert.Equal(t, tui.TabFavorites, tab)

	cfg.UI.DefaultView = config.ViewAll
	tab, err = startTab(rootCmd, cfg)
	require.NoError(t, err)
	assert.Equal(t, tui.TabAll, tab)

	require.NoError(t, rootCmd.Flags().Set("view", "favorites"))
	tab, err = startTab(rootCmd, cfg)
	require.NoError(t, err)
	assert.Equal(t, tui.TabFavorites, tab)

	require.NoError(t, rootCmd.Flags().Set("view", "grid"))
	_, err = startTab(rootCmd, cfg)
	assert.Error(t, err)
}
