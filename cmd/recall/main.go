package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"recall/internal/app"
	"recall/internal/config"
	"recall/internal/logging"
	"recall/internal/nav"
)

// version is injected at build time via -ldflags="-X main.version=...".
var version = "dev"

const tagline = "Recall keybinds, shortcuts, commands and more"

type cli struct {
	Config  string           `help:"Path to a different configuration file" short:"c" placeholder:"FILE"`
	Debug   bool             `help:"Enable debug logging to file" short:"d"`
	LogFile string           `help:"Custom path for the debug log file" placeholder:"FILE"`
	Version kong.VersionFlag `help:"Show version information"`

	Run  runCmd  `cmd:"" default:"1" help:"Start the recall viewer"`
	Init initCmd `cmd:"" help:"Write an example config file and exit"`

	logger *zap.Logger `kong:"-"`
}

// AfterApply initializes logging once flags are parsed, before any command
// runs.
func (c *cli) AfterApply() error {
	logger, err := logging.New(c.Debug, c.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	c.logger = logger
	return nil
}

type runCmd struct{}

func (r *runCmd) Run(c *cli) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Run(ctx, app.Options{ConfigPath: c.Config, Logger: c.logger})
}

type initCmd struct{}

func (i *initCmd) Run(c *cli) error {
	msg, err := config.WriteExample(c.Config)
	if err != nil {
		return err
	}
	c.logger.Info("quitting", zap.Stringer("reason", nav.InitCompleted))
	fmt.Println(msg)
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("recall"),
		kong.Description(tagline),
		kong.Vars{"version": fmt.Sprintf("recall %s", version)},
		kong.UsageOnError(),
		kong.Bind(&c),
	)
	defer func() {
		if c.logger != nil {
			_ = c.logger.Sync()
		}
	}()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "recall: %v\n", err)
		os.Exit(1)
	}
}
