package models

// ActivityIndex maps activity definition ids to definitions.
type ActivityIndex map[string]ActivityDefinition

// InstanceIndex maps activity instance ids to instances.
type InstanceIndex map[string]ActivityInstance

// GoalIndex maps goal ids to goals.
type GoalIndex map[string]Goal

// IndexActivities builds an ActivityIndex. Later duplicates are ignored.
func IndexActivities(defs []ActivityDefinition) ActivityIndex {
	idx := make(ActivityIndex, len(defs))

	for _, d := range defs {
		if d.ID == "" {
			continue
		}

		if _, ok := idx[d.ID]; !ok {
			idx[d.ID] = d
		}
	}

	return idx
}

// IndexInstances builds an InstanceIndex. Later duplicates are ignored.
func IndexInstances(instances []ActivityInstance) InstanceIndex {
	idx := make(InstanceIndex, len(instances))

	for _, in := range instances {
		if in.ID == "" {
			continue
		}

		if _, ok := idx[in.ID]; !ok {
			idx[in.ID] = in
		}
	}

	return idx
}

// IndexGoals builds a GoalIndex. Later duplicates are ignored.
func IndexGoals(goals []Goal) GoalIndex {
	idx := make(GoalIndex, len(goals))

	for _, g := range goals {
		if g.ID == "" {
			continue
		}

		if _, ok := idx[g.ID]; !ok {
			idx[g.ID] = g
		}
	}

	return idx
}
