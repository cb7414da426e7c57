package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdxmph/easy-contacts/internal/config"
	"github.com/pdxmph/easy-contacts/internal/db"
	"github.com/pdxmph/easy-contacts/internal/device"
	"github.com/pdxmph/easy-contacts/internal/logging"

	// Register device backends
	_ "github.com/pdxmph/easy-contacts/internal/device/opener"
	_ "github.com/pdxmph/easy-contacts/internal/device/tts"
)

// app bundles what every command needs once flags are parsed
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	history *db.DB // nil when history is disabled
	device  *device.Manager
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setup loads config and opens the logger, history and device backends.
// Flags override config values.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level, verbose)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}

	if noSpeech, _ := cmd.Flags().GetBool("no-speech"); noSpeech {
		cfg.Speech.Enabled = false
	}
	if name, _ := cmd.Flags().GetString("dialer"); name != "" {
		cfg.Dialer.Backend = name
	}
	if name, _ := cmd.Flags().GetString("speaker"); name != "" {
		cfg.Speech.Backend = name
	}

	opts := device.Options{
		Dialer:        cfg.Dialer.Backend,
		Speaker:       cfg.Speech.Backend,
		SpeechEnabled: cfg.Speech.Enabled,
		Voice:         device.Voice{Language: cfg.Speech.Language, Rate: cfg.Speech.Rate},
		Logger:        logger,
	}

	if cfg.History.Enabled {
		history, err := db.Open(cfg.History.Path)
		if err != nil {
			// calling still works without a history
			logger.Warn("history unavailable", zap.String("path", cfg.History.Path), zap.Error(err))
		} else {
			a.history = history
			opts.Recorder = history
		}
	}

	a.device, err = device.NewManager(opts)
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.Debug("setup complete",
		zap.String("command", cmd.Name()),
		zap.Bool("history", a.history != nil))
	return a, nil
}

// Close releases the history database and flushes the log
func (a *app) Close() error {
	var errs []error
	if a.history != nil {
		errs = append(errs, a.history.Close())
	}
	errs = append(errs, a.logger.Sync())
	return errors.Join(errs...)
}
