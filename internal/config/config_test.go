package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_OverridesAndExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[ui]
default_view = "all"
card_height = 7

[speech]
enabled = false
rate = 1.2

[dialer]
backend = "noop"

[history]
path = "~/calls.db"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, ViewAll, cfg.UI.DefaultView)
	assert.Equal(t, 7, cfg.UI.CardHeight)
	assert.Equal(t, 1, cfg.UI.Spacing, "unset keys keep defaults")
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, 1.2, cfg.Speech.Rate)
	assert.Equal(t, "en", cfg.Speech.Language)
	assert.Equal(t, "noop", cfg.Dialer.Backend)
	assert.Equal(t, filepath.Join(home, "calls.db"), cfg.History.Path)
	assert.True(t, cfg.History.Enabled)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]string{
		"view":   "[ui]\ndefault_view = \"grid\"\n",
		"height": "[ui]\ncard_height = 2\n",
		"rate":   "[speech]\nrate = 0.0\n",
		"level":  "[log]\nlevel = \"loud\"\n",
		"settle": "[ui]\nsettle_ms = 0\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))

			_, err := LoadFrom(path)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestLoadFrom_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.DefaultView = ViewAll
	cfg.Speech.Backend = "espeak"
	cfg.Log.Path = ""
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
