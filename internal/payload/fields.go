package payload

var targetFields = []field{
	{key: "id", paths: at("id", "target_id", "targetId")},
	{key: "name", paths: at("name", "title")},
	{key: "completed", paths: at("completed", "is_completed", "isCompleted")},
	{key: "completed_session_id", paths: at("completed_session_id", "completedSessionId")},
}

var goalFields = []field{
	{key: "id", paths: at("id", "goal_id", "goalId")},
	{key: "name", paths: at("name", "title", "attributes.name")},
	{key: "type", paths: at("type", "goal_type", "attributes.type")},
	{key: "completed", paths: at("completed", "attributes.completed")},
	{key: "completed_at", paths: at("completed_at", "completedAt", "attributes.completed_at")},
	{
		key:   "completed_session_id",
		paths: at("completed_session_id", "completedSessionId", "attributes.completed_session_id"),
	},
	{key: "targets", paths: at("targets", "attributes.targets"), each: normalizeTarget},
}

var exerciseFields = []field{
	{key: "instance_id", paths: at("instance_id", "instanceId", "activity_instance_id")},
	{key: "activity_id", paths: at("activity_id", "activityId", "activity_definition_id")},
	{key: "name", paths: at("name")},
	{key: "duration_seconds", paths: at("duration_seconds", "durationSeconds")},
}

var sectionFields = []field{
	{key: "id", paths: at("id", "section_id")},
	{key: "name", paths: at("name", "title")},
	{key: "activity_ids", paths: at("activity_ids", "activityIds", "activity_instance_ids")},
	{key: "exercises", paths: at("exercises", "activities"), each: normalizeExercise},
	{
		key:   "duration_minutes",
		paths: at("duration_minutes", "durationMinutes", "estimated_duration_minutes"),
	},
}

var noteFields = []field{
	{key: "id", paths: at("id")},
	{key: "session_id", paths: at("session_id", "sessionId")},
	{key: "created_at", paths: at("created_at", "createdAt")},
	{key: "context_type", paths: at("context_type", "contextType")},
	{
		key:   "activity_definition_id",
		paths: at("activity_definition_id", "activityDefinitionId"),
	},
	{
		key:   "activity_instance_id",
		paths: at("activity_instance_id", "activityInstanceId"),
	},
	{key: "set_index", paths: at("set_index", "setIndex")},
	{key: "content", paths: at("content", "text")},
	{key: "image_data", paths: at("image_data", "imageData", "image")},
}

var sessionFields = []field{
	{key: "id", paths: at("id", "session_id", "sessionId")},
	{key: "name", paths: at("name", "session_name", "attributes.name")},
	{
		key: "session_start",
		paths: at(
			"session_start",
			"sessionStart",
			"attributes.session_start",
			"attributes.session_data.session_start",
			"session_data.session_start",
		),
	},
	{
		key: "session_end",
		paths: at(
			"session_end",
			"sessionEnd",
			"attributes.session_end",
			"attributes.session_data.session_end",
			"session_data.session_end",
		),
	},
	{
		key: "last_paused_at",
		paths: at(
			"last_paused_at",
			"lastPausedAt",
			"attributes.session_data.last_paused_at",
			"session_data.last_paused_at",
		),
	},
	{
		key: "total_duration_seconds",
		paths: at(
			"total_duration_seconds",
			"totalDurationSeconds",
			"attributes.total_duration_seconds",
			"attributes.session_data.total_duration_seconds",
			"session_data.total_duration_seconds",
		),
	},
	{
		key: "total_paused_seconds",
		paths: at(
			"total_paused_seconds",
			"totalPausedSeconds",
			"attributes.session_data.total_paused_seconds",
			"session_data.total_paused_seconds",
		),
	},
	{key: "completed", paths: at("completed", "attributes.completed")},
	{
		key: "is_paused",
		paths: at(
			"is_paused",
			"isPaused",
			"attributes.session_data.is_paused",
			"session_data.is_paused",
		),
	},
	{
		key: "sections",
		paths: at(
			"sections",
			"attributes.session_data.sections",
			"session_data.sections",
			"attributes.sections",
		),
		each: normalizeSection,
	},
	{key: "short_term_goals", paths: at("short_term_goals", "shortTermGoals"), each: normalizeGoal},
	{key: "immediate_goals", paths: at("immediate_goals", "immediateGoals"), each: normalizeGoal},
	{key: "parent_ids", paths: at("parent_ids", "parentIds", "attributes.parent_ids")},
	{key: "goal_ids", paths: at("goal_ids", "goalIds", "attributes.goal_ids")},
	{key: "notes", paths: at("notes", "attributes.notes"), each: normalizeNote},
}

var instanceFields = []field{
	{key: "id", paths: at("id", "instance_id", "instanceId")},
	{
		key:   "activity_definition_id",
		paths: at("activity_definition_id", "activityDefinitionId", "activity_id"),
	},
	{key: "duration_seconds", paths: at("duration_seconds", "durationSeconds")},
}

var definitionFields = []field{
	{key: "id", paths: at("id", "activity_id")},
	{key: "name", paths: at("name", "title")},
	{
		key:   "associated_goal_ids",
		paths: at("associated_goal_ids", "associatedGoalIds", "goal_ids"),
	},
}

// goalFields refers to normalizeGoal for children, which refers back to
// goalFields, so the entry is added at init.
func init() {
	goalFields = append(goalFields, field{
		key:   "children",
		paths: at("children", "childrenGoals"),
		each:  normalizeGoal,
	})
}

func normalizeTarget(raw map[string]any) map[string]any   { return pick(raw, targetFields) }
func normalizeGoal(raw map[string]any) map[string]any     { return pick(raw, goalFields) }
func normalizeExercise(raw map[string]any) map[string]any { return pick(raw, exerciseFields) }
func normalizeSection(raw map[string]any) map[string]any  { return pick(raw, sectionFields) }
func normalizeNote(raw map[string]any) map[string]any     { return pick(raw, noteFields) }
