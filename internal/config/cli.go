package config

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Now       string
	DataPath  string
	LogLevel  string
	SessionID string
	Interval  time.Duration
	JSON      bool
	Sections  bool
	NoColor   bool
	Hour24    bool
}

// WithCLIConfig returns an Option that applies command-line flags on top of
// the file configuration.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Now:       ctx.String("now"),
			DataPath:  ctx.String("data"),
			LogLevel:  ctx.String("log-level"),
			SessionID: ctx.String("session"),
			Interval:  ctx.Duration("interval"),
			JSON:      ctx.Bool("json"),
			Sections:  ctx.Bool("sections"),
			NoColor:   ctx.Bool("no-color"),
			Hour24:    ctx.Bool("24hr"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.DataPath != "" {
		c.Data.Path = opts.DataPath
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.Interval != 0 {
		c.Clock.Interval = opts.Interval
	}

	if opts.Hour24 {
		c.Display.TwentyFourHour = true
	}

	c.CLI.SessionID = strings.TrimSpace(opts.SessionID)
	c.CLI.JSON = opts.JSON
	c.CLI.Sections = opts.Sections
	c.CLI.NoColor = opts.NoColor
	c.CLI.Now = now

	if opts.Now != "" {
		t, err := parseNow(opts.Now, now)
		if err != nil {
			return err
		}

		c.CLI.Now = t
	}

	return nil
}

// parseNow understands absolute dates as well as relative expressions such
// as "10 minutes ago".
func parseNow(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errInvalidNow.Fmt(s)
	}

	return dt.Time, nil
}
