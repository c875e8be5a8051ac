// Package models defines the canonical shapes of the practice data consumed by
// the analytics packages. Values arrive already fetched and normalised (see
// package payload) and are never mutated here.
package models

// GoalType is the level of a goal in the goal hierarchy.
type GoalType string

const (
	UltimateGoal  GoalType = "UltimateGoal"
	LongTermGoal  GoalType = "LongTermGoal"
	MidTermGoal   GoalType = "MidTermGoal"
	ShortTermGoal GoalType = "ShortTermGoal"
	ImmediateGoal GoalType = "ImmediateGoal"
	MicroGoal     GoalType = "MicroGoal"
	NanoGoal      GoalType = "NanoGoal"
)

// NoteContext identifies what a note is attached to.
type NoteContext string

const (
	ContextSession  NoteContext = "session"
	ContextActivity NoteContext = "activity_instance"
	ContextSet      NoteContext = "set"
)

// Session is one recorded practice session.
type Session struct {
	ID                   string    `json:"id" mapstructure:"id"`
	Name                 string    `json:"name" mapstructure:"name"`
	Start                Timestamp `json:"session_start" mapstructure:"session_start"`
	End                  Timestamp `json:"session_end" mapstructure:"session_end"`
	LastPausedAt         Timestamp `json:"last_paused_at" mapstructure:"last_paused_at"`
	Sections             []Section `json:"sections" mapstructure:"sections"`
	ShortTermGoals       []Goal    `json:"short_term_goals" mapstructure:"short_term_goals"`
	ImmediateGoals       []Goal    `json:"immediate_goals" mapstructure:"immediate_goals"`
	ParentIDs            []string  `json:"parent_ids" mapstructure:"parent_ids"`
	GoalIDs              []string  `json:"goal_ids" mapstructure:"goal_ids"`
	Notes                []Note    `json:"notes" mapstructure:"notes"`
	TotalDurationSeconds int       `json:"total_duration_seconds" mapstructure:"total_duration_seconds"`
	TotalPausedSeconds   int       `json:"total_paused_seconds" mapstructure:"total_paused_seconds"`
	Completed            bool      `json:"completed" mapstructure:"completed"`
	IsPaused             bool      `json:"is_paused" mapstructure:"is_paused"`
}

// DirectGoals returns the goals linked to the session through its per-type
// relation arrays, short-term goals first.
func (s *Session) DirectGoals() []Goal {
	goals := make([]Goal, 0, len(s.ShortTermGoals)+len(s.ImmediateGoals))
	goals = append(goals, s.ShortTermGoals...)

	return append(goals, s.ImmediateGoals...)
}

// Section is a timed block of a session.
type Section struct {
	ID              string     `json:"id" mapstructure:"id"`
	Name            string     `json:"name" mapstructure:"name"`
	ActivityIDs     []string   `json:"activity_ids" mapstructure:"activity_ids"`
	Exercises       []Exercise `json:"exercises" mapstructure:"exercises"`
	DurationMinutes int        `json:"duration_minutes" mapstructure:"duration_minutes"`
}

// Exercise is the legacy inline form of an activity inside a section.
type Exercise struct {
	DurationSeconds *int   `json:"duration_seconds" mapstructure:"duration_seconds"`
	InstanceID      string `json:"instance_id" mapstructure:"instance_id"`
	ActivityID      string `json:"activity_id" mapstructure:"activity_id"`
	Name            string `json:"name" mapstructure:"name"`
}

// ActivityInstance is one timed occurrence of an activity definition.
type ActivityInstance struct {
	DurationSeconds      *int   `json:"duration_seconds" mapstructure:"duration_seconds"`
	ID                   string `json:"id" mapstructure:"id"`
	ActivityDefinitionID string `json:"activity_definition_id" mapstructure:"activity_definition_id"`
}

// ActivityDefinition is the reusable template an instance is based on.
type ActivityDefinition struct {
	ID                string   `json:"id" mapstructure:"id"`
	Name              string   `json:"name" mapstructure:"name"`
	AssociatedGoalIDs []string `json:"associated_goal_ids" mapstructure:"associated_goal_ids"`
}

// Goal is a node in the goal hierarchy.
type Goal struct {
	ID                 string    `json:"id" mapstructure:"id"`
	Name               string    `json:"name" mapstructure:"name"`
	Type               GoalType  `json:"type" mapstructure:"type"`
	CompletedAt        Timestamp `json:"completed_at" mapstructure:"completed_at"`
	CompletedSessionID string    `json:"completed_session_id" mapstructure:"completed_session_id"`
	Targets            []Target  `json:"targets" mapstructure:"targets"`
	Children           []Goal    `json:"children" mapstructure:"children"`
	Completed          bool      `json:"completed" mapstructure:"completed"`
}

// Target is a quantitative threshold attached to a goal.
type Target struct {
	ID                 string `json:"id" mapstructure:"id"`
	Name               string `json:"name" mapstructure:"name"`
	CompletedSessionID string `json:"completed_session_id" mapstructure:"completed_session_id"`
	Completed          bool   `json:"completed" mapstructure:"completed"`
}

// Note is a free-text note recorded during a session.
type Note struct {
	SetIndex             *int        `json:"set_index,omitempty" mapstructure:"set_index"`
	ID                   string      `json:"id" mapstructure:"id"`
	SessionID            string      `json:"session_id" mapstructure:"session_id"`
	CreatedAt            Timestamp   `json:"created_at" mapstructure:"created_at"`
	ContextType          NoteContext `json:"context_type" mapstructure:"context_type"`
	ActivityDefinitionID string      `json:"activity_definition_id,omitempty" mapstructure:"activity_definition_id"`
	ActivityInstanceID   string      `json:"activity_instance_id,omitempty" mapstructure:"activity_instance_id"`
	Content              string      `json:"content" mapstructure:"content"`
	ImageData            string      `json:"image_data,omitempty" mapstructure:"image_data"`
}
