// Package achievement attributes achieved targets and completed goals to the
// practice session that produced them.
package achievement

import (
	"github.com/ayoisaiah/fractal/internal/models"
)

// AchievedTarget is a target achieved in a session together with the goal it
// belongs to.
type AchievedTarget struct {
	GoalID   string        `json:"goal_id"`
	GoalName string        `json:"goal_name"`
	Target   models.Target `json:"target"`
}

// Summary is the attribution report for one session.
type Summary struct {
	SessionID  string           `json:"session_id"`
	Associated []models.Goal    `json:"associated_goals"`
	Achieved   []AchievedTarget `json:"achieved_targets"`
	Completed  []models.Goal    `json:"completed_goals"`
}

// AchievedTargets returns the targets of goals that were achieved in sess, in
// goal then target order. A target qualifies when it records sess as the
// session it was completed in, or when it is marked completed. The second
// rule assumes goals holds only the goals embedded in sess, as returned by
// Session.DirectGoals; it must not be fed an unrelated goal list.
func AchievedTargets(sess *models.Session, goals []models.Goal) []AchievedTarget {
	if sess == nil {
		return nil
	}

	var achieved []AchievedTarget

	for _, g := range goals {
		achieved = appendTargets(achieved, sess, g, true)
	}

	return achieved
}

// appendTargets adds the targets of g achieved in sess. The completed flag
// alone is accepted only when trustCompleted is set.
func appendTargets(
	achieved []AchievedTarget,
	sess *models.Session,
	g models.Goal,
	trustCompleted bool,
) []AchievedTarget {
	for _, target := range g.Targets {
		inSession := target.CompletedSessionID != "" &&
			target.CompletedSessionID == sess.ID

		if !inSession && !(trustCompleted && target.Completed) {
			continue
		}

		achieved = append(achieved, AchievedTarget{
			Target:   target,
			GoalID:   g.ID,
			GoalName: g.Name,
		})
	}

	return achieved
}

// CompletedGoals returns the completed goals whose completion is explained by
// the achieved targets: either the goal owns one of them or one of its
// direct children does. Grandchildren are not considered.
func CompletedGoals(goals []models.Goal, achieved []AchievedTarget) []models.Goal {
	if len(achieved) == 0 {
		return nil
	}

	owners := make(map[string]bool, len(achieved))
	for _, a := range achieved {
		owners[a.GoalID] = true
	}

	var completed []models.Goal

	for _, g := range goals {
		if !g.Completed {
			continue
		}

		if owners[g.ID] || anyChildIn(g, owners) {
			completed = append(completed, g)
		}
	}

	return completed
}

func anyChildIn(g models.Goal, owners map[string]bool) bool {
	for _, child := range g.Children {
		if owners[child.ID] {
			return true
		}
	}

	return false
}

// Summarize runs the full attribution for sess. Targets of goals embedded in
// the session count when marked completed; targets of goals found through
// legacy ids, activities, or catalog must name sess as their session.
func Summarize(
	sess *models.Session,
	defs models.ActivityIndex,
	instances models.InstanceIndex,
	catalog models.GoalIndex,
) Summary {
	if sess == nil {
		return Summary{}
	}

	associated := AssociatedGoals(sess, defs, instances, catalog)
	direct := models.IndexGoals(sess.DirectGoals())

	// goals not embedded in sess need an explicit session match
	var achieved []AchievedTarget

	for _, g := range associated {
		_, embedded := direct[g.ID]
		achieved = appendTargets(achieved, sess, g, embedded)
	}

	return Summary{
		SessionID:  sess.ID,
		Associated: associated,
		Achieved:   achieved,
		Completed:  CompletedGoals(associated, achieved),
	}
}
