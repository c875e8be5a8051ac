// Package notes merges the notes of many sessions into a single timeline and
// works out how each note should be labelled.
package notes

import (
	"slices"
	"time"

	"github.com/ayoisaiah/fractal/internal/models"
)

// BuildTimeline flattens the notes of every session and orders them newest
// first. Notes without a session id inherit the id of the session they were
// found in. Notes with equal timestamps keep their encounter order, and notes
// with a missing or unparsable timestamp sort after all others.
func BuildTimeline(sessions []models.Session) []models.Note {
	type entry struct {
		at   time.Time
		note models.Note
		ok   bool
	}

	var entries []entry

	for i := range sessions {
		sess := &sessions[i]

		for _, n := range sess.Notes {
			if n.SessionID == "" {
				n.SessionID = sess.ID
			}

			at, ok := n.CreatedAt.Parse()

			entries = append(entries, entry{note: n, at: at, ok: ok})
		}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}

		return b.at.Compare(a.at)
	})

	timeline := make([]models.Note, len(entries))
	for i := range entries {
		timeline[i] = entries[i].note
	}

	return timeline
}

// FilterBySession returns the notes of timeline that belong to sessionID,
// preserving order.
func FilterBySession(timeline []models.Note, sessionID string) []models.Note {
	var filtered []models.Note

	for _, n := range timeline {
		if n.SessionID == sessionID {
			filtered = append(filtered, n)
		}
	}

	return filtered
}
