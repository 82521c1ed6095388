// Package logging builds the process-wide zap logger. While the TUI owns
// the terminal nothing may write to stdout or stderr, so debug logs go to a
// file and logging is a no-op otherwise.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogPath = "~/.local/state/recall/recall.log"

// New returns a JSON file logger when debug is set, and a nop logger
// otherwise. An empty path uses ~/.local/state/recall/recall.log.
func New(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	resolved, err := resolveLogPath(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(resolved, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), zapcore.DebugLevel)

	return zap.New(core, zap.Fields(zap.Int("pid", os.Getpid()))), nil
}

func resolveLogPath(path string) (string, error) {
	if path == "" {
		path = defaultLogPath
	}
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
