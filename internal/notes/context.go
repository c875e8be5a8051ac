package notes

import (
	"github.com/ayoisaiah/fractal/internal/models"
)

// Kind is the display category of a note.
type Kind string

const (
	KindSession  Kind = "session"
	KindActivity Kind = "activity"
	KindSet      Kind = "set"
	KindOther    Kind = "other"
)

const (
	labelSession  = "Session Note"
	labelActivity = "Activity"
	labelOther    = "Note"
)

// NoteContext describes where a note was taken.
type NoteContext struct {
	SetIndex     *int   `json:"set_index,omitempty"`
	Kind         Kind   `json:"kind"`
	Label        string `json:"label"`
	ActivityName string `json:"activity_name,omitempty"`
}

// Context classifies a note. Activity and set notes are labelled with the
// name of their activity definition when defs has it. A note without a
// definition id is resolved through its activity instance. SetIndex is
// zero-based and only reported for set notes.
func Context(
	note *models.Note,
	defs models.ActivityIndex,
	instances models.InstanceIndex,
) NoteContext {
	if note == nil {
		return NoteContext{Kind: KindOther, Label: labelOther}
	}

	switch note.ContextType {
	case models.ContextSession:
		return NoteContext{Kind: KindSession, Label: labelSession}
	case models.ContextActivity, models.ContextSet:
		ctx := NoteContext{Kind: KindActivity, Label: labelActivity}

		if def, ok := defs[definitionID(note, instances)]; ok && def.Name != "" {
			ctx.Label = def.Name
			ctx.ActivityName = def.Name
		}

		if note.ContextType == models.ContextSet {
			ctx.Kind = KindSet

			if note.SetIndex != nil && *note.SetIndex >= 0 {
				idx := *note.SetIndex
				ctx.SetIndex = &idx
			}
		}

		return ctx
	}

	return NoteContext{Kind: KindOther, Label: labelOther}
}

func definitionID(note *models.Note, instances models.InstanceIndex) string {
	if note.ActivityDefinitionID != "" {
		return note.ActivityDefinitionID
	}

	if inst, ok := instances[note.ActivityInstanceID]; ok {
		return inst.ActivityDefinitionID
	}

	return ""
}
