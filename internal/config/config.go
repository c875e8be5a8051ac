// Package config loads fractal settings from the configuration file and the
// command line.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

type (
	// Config holds all configuration settings.
	Config struct {
		CLI     CLIConfig     `mapstructure:"-"`
		Data    DataConfig    `mapstructure:"data"`
		Log     LogConfig     `mapstructure:"log"`
		Display DisplayConfig `mapstructure:"display"`
		Clock   ClockConfig   `mapstructure:"clock"`
	}

	// ClockConfig holds live clock settings.
	ClockConfig struct {
		Interval time.Duration `mapstructure:"interval"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		DarkTheme      bool `mapstructure:"dark_theme"`
	}

	// DataConfig points at the exported practice data.
	DataConfig struct {
		Path string `mapstructure:"path"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// CLIConfig holds options that only exist for a single invocation.
	CLIConfig struct {
		Now       time.Time
		SessionID string
		JSON      bool
		Sections  bool
		NoColor   bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "fractal"
	configFileName = "config.yml"
	dataFileName   = "export.json"
	logFileName    = "fractal.log"
	configFilePath string
	dataFilePath   string
	logFilePath    string
)

// Stdout receives command output.
var Stdout io.Writer = os.Stdout

func ConfigFilePath() string {
	return configFilePath
}

func DataFilePath() string {
	return dataFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the file locations under the XDG base
// directories. FRACTAL_ENV adds a suffix to every file name so that separate
// environments do not share state.
func InitializePaths() error {
	cfgName, dataName, logName := configFileName, dataFileName, logFileName

	env := strings.TrimSpace(os.Getenv("FRACTAL_ENV"))
	if env != "" {
		cfgName = fmt.Sprintf("config_%s.yml", env)
		dataName = fmt.Sprintf("export_%s.json", env)
		logName = fmt.Sprintf("fractal_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(filepath.Join(configDir, cfgName))
	if err != nil {
		return errResolvePath.Wrap(err)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		return errResolvePath.Wrap(err)
	}

	dataFilePath = filepath.Join(dataDir, dataName)
	logFilePath = filepath.Join(dataDir, "log", logName)

	return nil
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
