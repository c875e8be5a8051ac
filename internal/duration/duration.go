// Package duration computes how long a practice session or one of its
// sections lasted, choosing between the competing sources of that figure.
package duration

import (
	"time"

	"github.com/ayoisaiah/fractal/internal/models"
)

// SessionDuration returns the elapsed seconds of a session and true, or false
// when no source yields a positive value. Sources are tried in order:
//
//  1. the span between the session start and end timestamps
//  2. the total recorded when the session was completed
//  3. the sum of the durations of its finished activities
//
// The third source adds up SectionDuration values, each already floored at
// zero, so a section with a negative net duration counts as 0 instead of
// offsetting the other sections.
func SessionDuration(
	sess *models.Session,
	instances models.InstanceIndex,
) (int, bool) {
	if sess == nil {
		return 0, false
	}

	if secs, ok := WallClockSpan(sess.Start, sess.End); ok {
		return secs, true
	}

	if sess.TotalDurationSeconds > 0 {
		return sess.TotalDurationSeconds, true
	}

	var total int

	for i := range sess.Sections {
		total += SectionDuration(&sess.Sections[i], instances)
	}

	if total > 0 {
		return total, true
	}

	return 0, false
}

// WallClockSpan returns the whole seconds between start and end. Missing or
// unparsable endpoints, and spans that are not positive, yield false.
func WallClockSpan(start, end models.Timestamp) (int, bool) {
	s, ok := start.Parse()
	if !ok {
		return 0, false
	}

	e, ok := end.Parse()
	if !ok {
		return 0, false
	}

	secs := int(e.Sub(s) / time.Second)
	if secs <= 0 {
		return 0, false
	}

	return secs, true
}

// SectionDuration sums the durations of the finished activities in a section.
// Activities are referenced by instance id, or inline through the legacy
// exercises list, which may carry its own duration. An activity counted once
// is not counted again. The result is 0 when nothing qualifies.
func SectionDuration(
	section *models.Section,
	instances models.InstanceIndex,
) int {
	if section == nil {
		return 0
	}

	var total int

	seen := make(map[string]bool)

	for _, id := range section.ActivityIDs {
		if id == "" || seen[id] {
			continue
		}

		inst, ok := instances[id]
		if !ok || inst.DurationSeconds == nil {
			continue
		}

		seen[id] = true
		total += *inst.DurationSeconds
	}

	for _, ex := range section.Exercises {
		if ex.InstanceID == "" || seen[ex.InstanceID] {
			continue
		}

		secs := ex.DurationSeconds
		if secs == nil {
			if inst, ok := instances[ex.InstanceID]; ok {
				secs = inst.DurationSeconds
			}
		}

		if secs == nil {
			continue
		}

		seen[ex.InstanceID] = true
		total += *secs
	}

	return max(total, 0)
}

// PlannedSeconds returns the planned length of a section in seconds.
func PlannedSeconds(section *models.Section) int {
	if section == nil || section.DurationMinutes < 0 {
		return 0
	}

	return section.DurationMinutes * 60
}
