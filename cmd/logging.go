package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tinoosan/employees/internal/config"
)

// parseLogLevel maps config values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildLogger writes to stdout and, when a log file is configured, also to a
// rotating file. The returned func closes the file.
func buildLogger(cfg *config.Config) (*slog.Logger, func()) {
	var out io.Writer = os.Stdout
	closeFn := func() {}
	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
		closeFn = func() { _ = file.Close() }
	}

	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	var logger *slog.Logger
	if cfg.LogFormat == "text" {
		logger = slog.New(slog.NewTextHandler(out, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(out, opts))
	}
	slog.SetDefault(logger)
	return logger, closeFn
}
