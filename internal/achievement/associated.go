package achievement

import (
	"github.com/ayoisaiah/fractal/internal/models"
)

// LinkedGoalIDs returns the ids of every goal the session references
// directly, through the per-type relations first and then the legacy
// parent_ids and goal_ids fields. Duplicates are dropped.
func LinkedGoalIDs(sess *models.Session) []string {
	if sess == nil {
		return nil
	}

	var ids []string

	seen := make(map[string]bool)

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}

		seen[id] = true
		ids = append(ids, id)
	}

	for _, g := range sess.DirectGoals() {
		add(g.ID)
	}

	for _, id := range sess.ParentIDs {
		add(id)
	}

	for _, id := range sess.GoalIDs {
		add(id)
	}

	return ids
}

// AssociatedGoals returns the goals associated with sess without duplicates,
// in this order:
//
//  1. goals embedded in the per-type relations of the session
//  2. goals named by the legacy id fields, when catalog has them
//  3. goals associated with the activity definitions used in the sections
//
// Goal objects for 2 and 3 are looked up among the embedded goals and then in
// catalog. With a nil catalog an activity goal that is not also embedded in
// the session is dropped. Unknown definitions and goals are skipped.
func AssociatedGoals(
	sess *models.Session,
	defs models.ActivityIndex,
	instances models.InstanceIndex,
	catalog models.GoalIndex,
) []models.Goal {
	if sess == nil {
		return nil
	}

	direct := sess.DirectGoals()

	lookup := models.IndexGoals(direct)
	for id, g := range catalog {
		if _, ok := lookup[id]; !ok {
			lookup[id] = g
		}
	}

	var goals []models.Goal

	seen := make(map[string]bool)

	add := func(g models.Goal) {
		if g.ID == "" || seen[g.ID] {
			return
		}

		seen[g.ID] = true
		goals = append(goals, g)
	}

	for _, g := range direct {
		add(g)
	}

	for _, id := range LinkedGoalIDs(sess) {
		if g, ok := lookup[id]; ok {
			add(g)
		}
	}

	for _, defID := range definitionIDs(sess, instances) {
		def, ok := defs[defID]
		if !ok {
			continue
		}

		for _, goalID := range def.AssociatedGoalIDs {
			if g, ok := lookup[goalID]; ok {
				add(g)
			}
		}
	}

	return goals
}

// definitionIDs resolves the activity definitions used in the sections of
// sess. Instance references are preferred; legacy exercises fall back to
// their inline activity id.
func definitionIDs(sess *models.Session, instances models.InstanceIndex) []string {
	var ids []string

	seen := make(map[string]bool)

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}

		seen[id] = true
		ids = append(ids, id)
	}

	for _, section := range sess.Sections {
		for _, instanceID := range section.ActivityIDs {
			if inst, ok := instances[instanceID]; ok {
				add(inst.ActivityDefinitionID)
			}
		}

		for _, ex := range section.Exercises {
			if inst, ok := instances[ex.InstanceID]; ok && inst.ActivityDefinitionID != "" {
				add(inst.ActivityDefinitionID)
				continue
			}

			add(ex.ActivityID)
		}
	}

	return ids
}
