// Package logging configures the structured logger used across fractal.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/fractal/internal/config"
	"github.com/ayoisaiah/fractal/internal/osutil"
)

// New returns a JSON logger that writes to a size-rotated file at path.
// The returned closer releases the underlying file.
func New(cfg config.LogConfig, path string) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, nil, err
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	return NewWithWriter(out, level), out, nil
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}
