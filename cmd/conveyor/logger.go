package main

import (
	"log/slog"
	"os"

	"conveyor/pkg/config"
)

// slogAdapter exposes slog through the small Logger interface the internal
// packages accept.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *slogAdapter) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *slogAdapter) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *slogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// newLogger builds the process logger from the logging configuration.
func newLogger(cfg *config.Config) *slogAdapter {
	var level slog.Level
	switch {
	case cfg.Logging.Quiet:
		level = slog.LevelWarn
	case cfg.Logging.Verbose:
		level = slog.LevelDebug
	default:
		switch cfg.Logging.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return &slogAdapter{logger: slog.New(handler)}
}
