// Package logging configures the application logger. The TUI owns
// stdout, so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a file-backed logger at path. With verbose set the level
// drops to debug.
func New(path string, verbose bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// DefaultLogPath resolves the log file path:
// 1. NEUROSCREEN_LOG environment variable
// 2. $XDG_STATE_HOME/neuroscreen/neuroscreen.log
// 3. ~/.local/state/neuroscreen/neuroscreen.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("NEUROSCREEN_LOG"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, "neuroscreen", "neuroscreen.log"), nil
}
