package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks enumerated fields and worker counts.
func Validate(cfg *Config) error {
	var errs []string

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format: unknown format %q (want text or json)", cfg.Log.Format))
	}
	switch cfg.Search.Algorithm {
	case "astar", "bfs":
	default:
		errs = append(errs, fmt.Sprintf("search.algorithm: unknown algorithm %q (want astar or bfs)", cfg.Search.Algorithm))
	}
	if cfg.Graph.Workers < 1 {
		errs = append(errs, fmt.Sprintf("graph.workers: must be at least 1, got %d", cfg.Graph.Workers))
	}
	if cfg.Search.Workers < 1 {
		errs = append(errs, fmt.Sprintf("search.workers: must be at least 1, got %d", cfg.Search.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log.level: unknown level %q", name)
}
