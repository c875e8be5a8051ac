package app

import "github.com/urfave/cli/v2"

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the configuration file",
	}

	dataFlag = &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "Path to the exported practice data (overrides data.path)",
	}

	nowFlag = &cli.StringFlag{
		Name:  "now",
		Usage: "Evaluate running sessions at this time instead of the current time (e.g. '10 mins ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the report as JSON",
	}

	intervalFlag = &cli.DurationFlag{
		Name:  "interval",
		Usage: "How often the live clock refreshes (overrides clock.interval)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum level written to the log file: debug, info, warn, or error",
	}

	hour24Flag = &cli.BoolFlag{
		Name:  "24hr",
		Usage: "Print times using the 24-hour clock",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sessionFlag = &cli.StringFlag{
		Name:    "session",
		Aliases: []string{"s"},
		Usage:   "Restrict the report to the session with this id",
	}

	sectionsFlag = &cli.BoolFlag{
		Name:  "sections",
		Usage: "Include a breakdown of every section",
	}
)
