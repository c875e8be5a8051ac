package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fractal/internal/achievement"
	"github.com/ayoisaiah/fractal/internal/duration"
	"github.com/ayoisaiah/fractal/internal/liveclock"
	"github.com/ayoisaiah/fractal/internal/models"
	"github.com/ayoisaiah/fractal/internal/notes"
	"github.com/ayoisaiah/fractal/internal/ui"
)

const (
	noSessionsMsg = "No sessions found in the export"
	noNotesMsg    = "No notes found"
	unavailable   = "-"
)

type sectionRow struct {
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
	Planned int    `json:"planned_seconds"`
	Elapsed string `json:"elapsed"`
}

type durationRow struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Seconds    *int         `json:"seconds"`
	HourMinute string       `json:"hour_minute"`
	Human      string       `json:"human"`
	Sections   []sectionRow `json:"sections,omitempty"`
}

type timelineEntry struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	CreatedAt string     `json:"created_at"`
	Kind      notes.Kind `json:"kind"`
	Label     string     `json:"label"`
	SetIndex  *int       `json:"set_index,omitempty"`
	Content   string     `json:"content"`
}

type clockReport struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Elapsed   int    `json:"elapsed"`
	Display   string `json:"display"`
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// durationRows computes the durations of sessions ordered by id, with
// numeric runs compared by value.
func durationRows(
	sessions []models.Session,
	instances models.InstanceIndex,
	withSections bool,
) []durationRow {
	rows := make([]durationRow, 0, len(sessions))

	for i := range sessions {
		sess := &sessions[i]

		secs, ok := duration.SessionDuration(sess, instances)

		row := durationRow{
			ID:         sess.ID,
			Name:       sess.Name,
			HourMinute: duration.FormatHourMinute(secs, ok),
			Human:      duration.FormatHuman(secs, ok),
		}

		if ok {
			row.Seconds = &secs
		}

		if withSections {
			for j := range sess.Sections {
				section := &sess.Sections[j]
				actual := duration.SectionDuration(section, instances)

				row.Sections = append(row.Sections, sectionRow{
					Name:    section.Name,
					Seconds: actual,
					Planned: duration.PlannedSeconds(section),
					Elapsed: duration.FormatShort(actual, true),
				})
			}
		}

		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b durationRow) int {
		switch {
		case natural.Less(a.ID, b.ID):
			return -1
		case natural.Less(b.ID, a.ID):
			return 1
		}

		return 0
	})

	return rows
}

func printDurations(w io.Writer, rows []durationRow) error {
	if len(rows) == 0 {
		fmt.Fprint(w, pterm.Info.Sprintln(noSessionsMsg))
		return nil
	}

	data := [][]string{{"ID", "NAME", "H:MM", "DURATION"}}

	for _, row := range rows {
		hm := row.HourMinute
		if row.Seconds == nil {
			hm = ui.Red(hm)
		}

		data = append(data, []string{
			ui.Highlight(row.ID),
			row.Name,
			hm,
			row.Human,
		})

		for _, section := range row.Sections {
			data = append(data, []string{
				"",
				ui.Dim("└ " + section.Name),
				section.Elapsed,
				"of " + duration.FormatShort(section.Planned, true) + " planned",
			})
		}
	}

	return ui.PrintTable(w, data)
}

func printAchievements(
	w io.Writer,
	sess *models.Session,
	summary *achievement.Summary,
) error {
	fmt.Fprint(w, pterm.DefaultSection.Sprintfln("Goals for %s", sessionTitle(sess)))

	if len(summary.Associated) == 0 {
		fmt.Fprint(w, pterm.Info.Sprintln("No goals are linked to this session"))
		return nil
	}

	completed := make(map[string]bool, len(summary.Completed))
	for _, g := range summary.Completed {
		completed[g.ID] = true
	}

	goals := [][]string{{"GOAL", "TYPE", "STATUS"}}

	for _, g := range summary.Associated {
		status := unavailable
		if completed[g.ID] {
			status = ui.Green("completed here")
		} else if g.Completed {
			status = ui.Cyan("completed")
		}

		goals = append(goals, []string{g.Name, string(g.Type), status})
	}

	if err := ui.PrintTable(w, goals); err != nil {
		return err
	}

	if len(summary.Achieved) == 0 {
		fmt.Fprint(w, pterm.Info.Sprintln("No targets were achieved in this session"))
		return nil
	}

	targets := [][]string{{"TARGET", "GOAL"}}

	for _, a := range summary.Achieved {
		targets = append(targets, []string{ui.Green(a.Target.Name), a.GoalName})
	}

	return ui.PrintTable(w, targets)
}

func sessionTitle(sess *models.Session) string {
	if sess.Name == "" {
		return sess.ID
	}

	return fmt.Sprintf("%s (%s)", sess.Name, sess.ID)
}

func timelineEntries(
	timeline []models.Note,
	defs models.ActivityIndex,
	instances models.InstanceIndex,
) []timelineEntry {
	entries := make([]timelineEntry, 0, len(timeline))

	for i := range timeline {
		note := &timeline[i]
		ctx := notes.Context(note, defs, instances)

		entries = append(entries, timelineEntry{
			ID:        note.ID,
			SessionID: note.SessionID,
			CreatedAt: string(note.CreatedAt),
			Kind:      ctx.Kind,
			Label:     ctx.Label,
			SetIndex:  ctx.SetIndex,
			Content:   note.Content,
		})
	}

	return entries
}

func printTimeline(w io.Writer, entries []timelineEntry, hour24 bool) error {
	if len(entries) == 0 {
		fmt.Fprint(w, pterm.Info.Sprintln(noNotesMsg))
		return nil
	}

	layout := "Jan 02, 2006 03:04 PM"
	if hour24 {
		layout = "Jan 02, 2006 15:04"
	}

	data := [][]string{{"WHEN", "SESSION", "CONTEXT", "NOTE"}}

	for _, e := range entries {
		when := unavailable
		if t, ok := models.Timestamp(e.CreatedAt).Parse(); ok {
			when = t.Local().Format(layout)
		}

		label := e.Label
		if e.SetIndex != nil {
			label += " · set " + strconv.Itoa(*e.SetIndex+1)
		}

		data = append(data, []string{
			when,
			e.SessionID,
			ui.Cyan(label),
			strings.TrimSpace(e.Content),
		})
	}

	return ui.PrintTable(w, data)
}

func newClockReport(sessionID string, state liveclock.State, elapsed int) clockReport {
	return clockReport{
		SessionID: sessionID,
		State:     state.String(),
		Elapsed:   elapsed,
		Display:   duration.FormatShort(elapsed, true),
	}
}
