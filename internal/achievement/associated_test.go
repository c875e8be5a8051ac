package achievement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/fractal/internal/achievement"
	"github.com/ayoisaiah/fractal/internal/models"
)

var (
	defs = models.IndexActivities([]models.ActivityDefinition{
		{ID: "scales", Name: "Scales", AssociatedGoalIDs: []string{"stg-1", "stg-remote"}},
		{ID: "chords", Name: "Chords", AssociatedGoalIDs: []string{"ig-1"}},
		{ID: "etude", Name: "Etude", AssociatedGoalIDs: []string{"missing"}},
	})

	instances = models.IndexInstances([]models.ActivityInstance{
		{ID: "i-scales", ActivityDefinitionID: "scales"},
		{ID: "i-chords", ActivityDefinitionID: "chords"},
	})
)

func TestLinkedGoalIDs(t *testing.T) {
	sess := &models.Session{
		ShortTermGoals: []models.Goal{{ID: "stg-1"}},
		ImmediateGoals: []models.Goal{{ID: "ig-1"}, {ID: "stg-1"}},
		ParentIDs:      []string{"stg-1", "legacy-parent"},
		GoalIDs:        []string{"", "legacy-goal", "legacy-parent"},
	}

	got := achievement.LinkedGoalIDs(sess)

	assert.Equal(t, []string{"stg-1", "ig-1", "legacy-parent", "legacy-goal"}, got)
	assert.Nil(t, achievement.LinkedGoalIDs(nil))
}

func TestAssociatedGoalsDirectOnly(t *testing.T) {
	sess := &models.Session{
		ShortTermGoals: []models.Goal{{ID: "stg-1"}, {ID: "stg-1"}},
		ImmediateGoals: []models.Goal{{ID: "ig-1"}},
		Sections: []models.Section{
			{ActivityIDs: []string{"i-scales", "i-chords", "unknown-instance"}},
			{Exercises: []models.Exercise{{ActivityID: "etude"}}},
		},
	}

	got := achievement.AssociatedGoals(sess, defs, instances, nil)

	// stg-remote is reachable through "scales" but the session does not
	// carry it, so it is dropped
	assert.Equal(t, []string{"stg-1", "ig-1"}, goalIDs(got))
}

func TestAssociatedGoalsWithCatalog(t *testing.T) {
	sess := &models.Session{
		ImmediateGoals: []models.Goal{{ID: "ig-1", Name: "embedded"}},
		GoalIDs:        []string{"legacy"},
		Sections: []models.Section{
			{Exercises: []models.Exercise{
				{InstanceID: "i-scales", ActivityID: "chords"},
			}},
		},
	}

	catalog := models.IndexGoals([]models.Goal{
		{ID: "ig-1", Name: "from catalog"},
		{ID: "legacy"},
		{ID: "stg-1"},
		{ID: "stg-remote"},
	})

	got := achievement.AssociatedGoals(sess, defs, instances, catalog)

	assert.Equal(t, []string{"ig-1", "legacy", "stg-1", "stg-remote"}, goalIDs(got))
	assert.Equal(t, "embedded", got[0].Name)
}

func TestAssociatedGoalsLegacyExerciseActivityID(t *testing.T) {
	sess := &models.Session{
		ShortTermGoals: []models.Goal{{ID: "stg-1"}},
		Sections: []models.Section{
			{Exercises: []models.Exercise{{InstanceID: "gone", ActivityID: "chords"}}},
		},
	}

	catalog := models.IndexGoals([]models.Goal{{ID: "ig-1"}})

	got := achievement.AssociatedGoals(sess, defs, instances, catalog)

	assert.Equal(t, []string{"stg-1", "ig-1"}, goalIDs(got))
}

func TestAssociatedGoalsPartialInput(t *testing.T) {
	assert.Nil(t, achievement.AssociatedGoals(nil, nil, nil, nil))
	assert.Empty(t, achievement.AssociatedGoals(&models.Session{
		Sections: []models.Section{{ActivityIDs: []string{"x"}}},
	}, nil, nil, nil))
}

func TestSummarize(t *testing.T) {
	sess := &models.Session{
		ID: "s1",
		ShortTermGoals: []models.Goal{
			{
				ID:        "stg-1",
				Name:      "Clean scales",
				Completed: true,
				Targets: []models.Target{
					{ID: "t1", CompletedSessionID: "s1"},
				},
			},
			{
				ID:        "stg-2",
				Completed: true,
				Children:  []models.Goal{{ID: "ig-1"}},
			},
		},
		ImmediateGoals: []models.Goal{
			{
				ID: "ig-1",
				Targets: []models.Target{
					{ID: "t2", CompletedSessionID: "s1"},
					{ID: "t3", CompletedSessionID: "s0"},
				},
			},
		},
	}

	got := achievement.Summarize(sess, defs, instances, nil)

	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, []string{"stg-1", "stg-2", "ig-1"}, goalIDs(got.Associated))
	assert.Equal(t, []string{"t1", "t2"}, targetIDs(got.Achieved))
	assert.Equal(t, []string{"stg-1", "stg-2"}, goalIDs(got.Completed))
}

func TestSummarizeCatalogGoalFinishedElsewhere(t *testing.T) {
	sess := &models.Session{
		ID: "s2",
		Sections: []models.Section{
			{ActivityIDs: []string{"i-chords"}},
		},
		GoalIDs: []string{"legacy"},
	}

	catalog := models.IndexGoals([]models.Goal{
		{
			ID:        "ig-1",
			Completed: true,
			Targets: []models.Target{
				{ID: "t9", Completed: true, CompletedSessionID: "s1"},
				{ID: "t10", Completed: true},
			},
		},
		{
			ID:        "legacy",
			Completed: true,
			Targets: []models.Target{
				{ID: "t11", Completed: true, CompletedSessionID: "s2"},
			},
		},
	})

	got := achievement.Summarize(sess, defs, instances, catalog)

	assert.Equal(t, []string{"legacy", "ig-1"}, goalIDs(got.Associated))
	assert.Equal(t, []string{"t11"}, targetIDs(got.Achieved))
	assert.Equal(t, []string{"legacy"}, goalIDs(got.Completed))
}
