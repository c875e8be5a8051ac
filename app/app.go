// Package app wires the fractal command-line interface.
package app

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fractal/internal/config"
)

const (
	envNoColor        = "NO_COLOR"
	envFractalNoColor = "FRACTAL_NO_COLOR"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the fractal app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "fractal",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Fractal reports on exported practice sessions: how long they lasted,
		which goals and targets they moved forward, and the notes taken along
		the way.`,
		UsageText:            "[OPTIONS] [COMMAND] [COMMAND OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "durations",
				Usage:  "List the duration of every session",
				Action: durationsAction,
				Flags: []cli.Flag{
					sessionFlag,
					sectionsFlag,
				},
			},
			{
				Name:   "achievements",
				Usage:  "Show the goals and targets attributed to a session",
				Action: achievementsAction,
				Flags: []cli.Flag{
					sessionFlag,
				},
			},
			{
				Name:   "timeline",
				Usage:  "Print the notes of all sessions, newest first",
				Action: timelineAction,
				Flags: []cli.Flag{
					sessionFlag,
				},
			},
			{
				Name:   "clock",
				Usage:  "Display the live elapsed time of a session",
				Action: clockAction,
				Flags: []cli.Flag{
					sessionFlag,
				},
			},
		},
		Flags: []cli.Flag{
			configFlag,
			dataFlag,
			nowFlag,
			jsonFlag,
			intervalFlag,
			logLevelFlag,
			hour24Flag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FRACTAL_NO_COLOR is set
	if _, exists := os.LookupEnv(envFractalNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return config.InitializePaths()
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting fractal")

	return nil
}
