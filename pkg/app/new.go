package app

import (
	"log/slog"

	"tableflip.dev/daybook/pkg/store"
)

// New opens the settings store named by cfg. pathFlag, when set, wins over
// both the configured and the stored journal path.
func New(cfg store.Config, pathFlag string, logger *slog.Logger) (*Service, error) {
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, err
		}
	}
	st, err := store.OpenSettings(cfg.DataDir())
	if err != nil {
		return nil, err
	}
	override := cfg.JournalPath()
	if pathFlag != "" {
		override = pathFlag
	}
	if logger != nil {
		logger.Debug("opened settings", "data", cfg.DataDir(), "config", store.ConfigFile(cfg), "override", override)
	}
	return &Service{
		Settings:     st,
		PathOverride: override,
		Logger:       logger,
	}, nil
}
