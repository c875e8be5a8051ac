package app

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fractal/internal/achievement"
	"github.com/ayoisaiah/fractal/internal/config"
	"github.com/ayoisaiah/fractal/internal/liveclock"
	"github.com/ayoisaiah/fractal/internal/logging"
	"github.com/ayoisaiah/fractal/internal/models"
	"github.com/ayoisaiah/fractal/internal/notes"
	"github.com/ayoisaiah/fractal/internal/payload"
	"github.com/ayoisaiah/fractal/internal/timesource"
	"github.com/ayoisaiah/fractal/internal/ui"
)

// setup loads the configuration and the export file for a command.
func setup(ctx *cli.Context) (*config.Config, *payload.Bundle, io.Closer, error) {
	configPath := ctx.String("config")
	if configPath == "" {
		configPath = config.ConfigFilePath()
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	logger, closer, err := logging.New(cfg.Log, config.LogFilePath())
	if err != nil {
		return nil, nil, nil, err
	}

	slog.SetDefault(logger)
	slog.Debug("configuration loaded", slog.String("config", spew.Sdump(cfg)))

	if cfg.Data.Path == "" {
		return nil, nil, closer, errNoDataPath.Fmt(configPath)
	}

	bundle, err := payload.Load(cfg.Data.Path)
	if err != nil {
		return nil, nil, closer, err
	}

	for _, w := range bundle.Warnings {
		slog.Warn("partial record in export", slog.Any("error", w))
	}

	slog.Info(
		"export loaded",
		slog.String("path", cfg.Data.Path),
		slog.Int("sessions", len(bundle.Sessions)),
		slog.Int("goals", len(bundle.Goals)),
		slog.Int("warnings", len(bundle.Warnings)),
	)

	return cfg, bundle, closer, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

// requireSession resolves the session named by --session.
func requireSession(
	ctx *cli.Context,
	cfg *config.Config,
	bundle *payload.Bundle,
) (*models.Session, error) {
	if cfg.CLI.SessionID == "" {
		return nil, errSessionRequired.Fmt(ctx.Command.Name)
	}

	sess, ok := bundle.Session(cfg.CLI.SessionID)
	if !ok {
		return nil, errSessionNotFound.Fmt(cfg.CLI.SessionID, cfg.Data.Path)
	}

	return sess, nil
}

// durationsAction prints the duration of each session, optionally broken
// down by section.
func durationsAction(ctx *cli.Context) error {
	cfg, bundle, closer, err := setup(ctx)
	defer closeQuietly(closer)

	if err != nil {
		return err
	}

	sessions := bundle.Sessions

	if cfg.CLI.SessionID != "" {
		sess, err := requireSession(ctx, cfg, bundle)
		if err != nil {
			return err
		}

		sessions = []models.Session{*sess}
	}

	rows := durationRows(sessions, bundle.InstanceIndex(), cfg.CLI.Sections)

	if cfg.CLI.JSON {
		return printJSON(config.Stdout, rows)
	}

	return printDurations(config.Stdout, rows)
}

// achievementsAction prints the goals associated with a session and the
// targets and goals it accomplished.
func achievementsAction(ctx *cli.Context) error {
	cfg, bundle, closer, err := setup(ctx)
	defer closeQuietly(closer)

	if err != nil {
		return err
	}

	sess, err := requireSession(ctx, cfg, bundle)
	if err != nil {
		return err
	}

	summary := achievement.Summarize(
		sess,
		bundle.ActivityIndex(),
		bundle.InstanceIndex(),
		bundle.GoalIndex(),
	)

	slog.Debug(
		"achievements computed",
		slog.String("session_id", sess.ID),
		slog.Int("associated", len(summary.Associated)),
		slog.Int("achieved", len(summary.Achieved)),
		slog.Int("completed", len(summary.Completed)),
	)

	if cfg.CLI.JSON {
		return printJSON(config.Stdout, summary)
	}

	return printAchievements(config.Stdout, sess, &summary)
}

// timelineAction prints the merged note timeline.
func timelineAction(ctx *cli.Context) error {
	cfg, bundle, closer, err := setup(ctx)
	defer closeQuietly(closer)

	if err != nil {
		return err
	}

	timeline := notes.BuildTimeline(bundle.Sessions)

	if cfg.CLI.SessionID != "" {
		timeline = notes.FilterBySession(timeline, cfg.CLI.SessionID)
	}

	entries := timelineEntries(timeline, bundle.ActivityIndex(), bundle.InstanceIndex())

	if cfg.CLI.JSON {
		return printJSON(config.Stdout, entries)
	}

	return printTimeline(config.Stdout, entries, cfg.Display.TwentyFourHour)
}

// clockAction shows the elapsed time of a session. With --json a single
// reading taken at --now is printed instead of the live view.
func clockAction(ctx *cli.Context) error {
	cfg, bundle, closer, err := setup(ctx)
	defer closeQuietly(closer)

	if err != nil {
		return err
	}

	sess, err := requireSession(ctx, cfg, bundle)
	if err != nil {
		return err
	}

	instances := bundle.InstanceIndex()

	if cfg.CLI.JSON {
		state, elapsed := liveclock.Evaluate(sess, instances, cfg.CLI.Now)

		return printJSON(config.Stdout, newClockReport(sess.ID, state, elapsed))
	}

	src := timesource.System()
	if ctx.IsSet("now") {
		src = timesource.Shifted(src, time.Until(cfg.CLI.Now))
	}

	state, elapsed := liveclock.Evaluate(sess, instances, src.Now())

	title := sess.Name
	if title == "" {
		title = sess.ID
	}

	p := tea.NewProgram(
		ui.NewClockView(title, liveclock.Reading{State: state, Elapsed: elapsed}),
	)

	clock := liveclock.New(
		src,
		liveclock.WithInterval(cfg.Clock.Interval),
		liveclock.WithListener(func(r liveclock.Reading) {
			p.Send(ui.ReadingMsg(r))
		}),
	)
	defer clock.Close()

	// Send blocks until the program has started
	go clock.Track(sess, instances)

	_, err = p.Run()

	return err
}
