// Package payload turns the JSON documents returned by the practice API into
// the canonical models. The API has shipped the same value under different
// keys and at different nesting depths over time; every accessor for a field
// is tried in order so the rest of the code only sees one shape.
package payload

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/ayoisaiah/fractal/internal/apperr"
	"github.com/ayoisaiah/fractal/internal/models"
)

var errDecode = &apperr.Error{Message: "decoding %s payload"}

// decode fills out from a canonical map. Values of the wrong type are
// converted where possible; fields that cannot be converted keep their zero
// value and are reported in the returned error.
func decode(kind string, canonical map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errDecode.Fmt(kind).Wrap(err)
	}

	if err := dec.Decode(canonical); err != nil {
		return errDecode.Fmt(kind).Wrap(err)
	}

	return nil
}

// NormalizeSession converts a raw session payload. The returned session is
// usable even when err is not nil.
func NormalizeSession(raw map[string]any) (models.Session, error) {
	var s models.Session

	err := decode("session", pick(raw, sessionFields), &s)

	return s, err
}

// NormalizeGoal converts a raw goal payload, including targets and children.
func NormalizeGoal(raw map[string]any) (models.Goal, error) {
	var g models.Goal

	err := decode("goal", normalizeGoal(raw), &g)

	return g, err
}

// NormalizeNote converts a raw note payload.
func NormalizeNote(raw map[string]any) (models.Note, error) {
	var n models.Note

	err := decode("note", normalizeNote(raw), &n)

	return n, err
}

// NormalizeInstance converts a raw activity instance payload.
func NormalizeInstance(raw map[string]any) (models.ActivityInstance, error) {
	var in models.ActivityInstance

	err := decode("activity instance", pick(raw, instanceFields), &in)

	return in, err
}

// NormalizeDefinition converts a raw activity definition payload.
func NormalizeDefinition(raw map[string]any) (models.ActivityDefinition, error) {
	var d models.ActivityDefinition

	err := decode("activity definition", pick(raw, definitionFields), &d)

	return d, err
}
