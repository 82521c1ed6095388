package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"recall/internal/config"
	"recall/internal/nav"
	"recall/internal/ui"
)

// Options configure the recall application.
type Options struct {
	ConfigPath string // empty uses ~/.config/recall/config.toml
	Logger     *zap.Logger
}

// Run boots the recall viewer until the user quits or ctx is cancelled.
// The config is loaded exactly once; entering the render loop requires that
// load to have succeeded.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Info("config loaded", zap.Int("pages", len(cfg.Pages)))

	navState := nav.New(len(cfg.Pages))

	err = ui.Run(ctx, ui.Options{
		Config: cfg,
		Nav:    navState,
		Logger: logger,
	})
	if err != nil {
		// Context cancellation (SIGINT/SIGTERM) kills the program from the
		// outside; report it as an interrupt quit rather than a failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			navState.RequestQuit(nav.Interrupted)
		} else {
			return fmt.Errorf("run ui: %w", err)
		}
	}

	if reason, done := navState.Done(); done {
		logger.Info("quitting", zap.Stringer("reason", reason))
	}
	return nil
}
