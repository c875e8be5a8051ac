package config

import (
	"log/slog"
	"strings"
	"time"
)

var (
	minClockInterval = 100 * time.Millisecond
	maxClockInterval = time.Minute
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Clock.Interval < minClockInterval || c.Clock.Interval > maxClockInterval {
		return errInvalidInterval.Fmt(
			minClockInterval,
			maxClockInterval,
			c.Clock.Interval,
		)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	if c.Log.MaxSizeMB < 1 {
		return errInvalidLogSize.Fmt(c.Log.MaxSizeMB)
	}

	return nil
}

// SlogLevel converts the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, errInvalidLogLevel.Fmt(l.Level)
}
