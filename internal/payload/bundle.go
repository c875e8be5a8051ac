package payload

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/ayoisaiah/fractal/internal/apperr"
	"github.com/ayoisaiah/fractal/internal/models"
)

var (
	errReadBundle = &apperr.Error{
		Message: "reading export file %s",
	}

	errParseBundle = &apperr.Error{
		Message: "export must be a JSON object or a list of sessions",
	}
)

// Bundle is a snapshot of practice data exported from the API.
type Bundle struct {
	Sessions   []models.Session
	Activities []models.ActivityDefinition
	Instances  []models.ActivityInstance
	Goals      []models.Goal
	// Warnings holds the decode problems of entities that were kept with
	// some fields left empty.
	Warnings []error
}

var (
	sessionKeys    = at("sessions", "data.sessions")
	activityKeys   = at("activities", "activity_definitions", "activityDefinitions")
	instanceKeys   = at("activity_instances", "activityInstances", "instances")
	goalKeys       = at("goals", "data.goals")
	topLevelFields = []field{
		{key: "sessions", paths: sessionKeys},
		{key: "activities", paths: activityKeys},
		{key: "activity_instances", paths: instanceKeys},
		{key: "goals", paths: goalKeys},
	}
)

// Load reads and normalises an export file.
func Load(path string) (*Bundle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadBundle.Fmt(path).Wrap(err)
	}

	return Parse(b)
}

// Parse normalises an export document. A bare JSON list is read as a list of
// sessions.
func Parse(data []byte) (*Bundle, error) {
	var doc any

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errParseBundle.Wrap(err)
	}

	var raw map[string]any

	switch v := doc.(type) {
	case []any:
		raw = map[string]any{"sessions": v}
	case map[string]any:
		raw = pick(v, topLevelFields)
	default:
		return nil, errParseBundle
	}

	bundle := &Bundle{}

	for _, obj := range objects(raw["sessions"]) {
		s, err := NormalizeSession(obj)
		bundle.warn(err)
		bundle.Sessions = append(bundle.Sessions, s)
	}

	for _, obj := range objects(raw["activities"]) {
		d, err := NormalizeDefinition(obj)
		bundle.warn(err)
		bundle.Activities = append(bundle.Activities, d)
	}

	for _, obj := range objects(raw["activity_instances"]) {
		in, err := NormalizeInstance(obj)
		bundle.warn(err)
		bundle.Instances = append(bundle.Instances, in)
	}

	for _, obj := range objects(raw["goals"]) {
		g, err := NormalizeGoal(obj)
		bundle.warn(err)
		bundle.Goals = append(bundle.Goals, g)
	}

	return bundle, nil
}

func objects(v any) []map[string]any {
	items := asList(v)
	out := make([]map[string]any, 0, len(items))

	for _, item := range items {
		if obj, ok := asObject(item); ok {
			out = append(out, obj)
		}
	}

	return out
}

func (b *Bundle) warn(err error) {
	if err != nil {
		b.Warnings = append(b.Warnings, err)
	}
}

// Err joins the bundle warnings into a single error, or returns nil.
func (b *Bundle) Err() error {
	return errors.Join(b.Warnings...)
}

// Session returns the session with the given id.
func (b *Bundle) Session(id string) (*models.Session, bool) {
	for i := range b.Sessions {
		if b.Sessions[i].ID == id {
			return &b.Sessions[i], true
		}
	}

	return nil, false
}

// ActivityIndex indexes the activity definitions of the bundle.
func (b *Bundle) ActivityIndex() models.ActivityIndex {
	return models.IndexActivities(b.Activities)
}

// InstanceIndex indexes the activity instances of the bundle.
func (b *Bundle) InstanceIndex() models.InstanceIndex {
	return models.IndexInstances(b.Instances)
}

// GoalIndex indexes every goal of the bundle, including nested children.
func (b *Bundle) GoalIndex() models.GoalIndex {
	var all []models.Goal

	var walk func(goals []models.Goal)

	walk = func(goals []models.Goal) {
		for _, g := range goals {
			all = append(all, g)
			walk(g.Children)
		}
	}

	walk(b.Goals)

	return models.IndexGoals(all)
}
