package payload

import (
	"encoding/json"
	"strings"
)

// field maps one canonical key to the locations it may be found at in a raw
// payload, in order of preference. When each is set, every element of the
// list found at the location is normalised with it.
type field struct {
	each  func(map[string]any) map[string]any
	key   string
	paths [][]string
}

func at(paths ...string) [][]string {
	out := make([][]string, len(paths))
	for i, p := range paths {
		out[i] = strings.Split(p, ".")
	}

	return out
}

// lookup walks path through nested objects. A nil value and a blank string
// count as absent.
func lookup(raw map[string]any, path []string) (any, bool) {
	var cur any = raw

	for _, key := range path {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}

		cur, ok = obj[key]
		if !ok || cur == nil {
			return nil, false
		}
	}

	if str, ok := cur.(string); ok && strings.TrimSpace(str) == "" {
		return nil, false
	}

	return cur, true
}

// pick builds the canonical form of raw from fields. Keys that cannot be
// found are left out.
func pick(raw map[string]any, fields []field) map[string]any {
	out := make(map[string]any, len(fields))

	for _, f := range fields {
		for _, path := range f.paths {
			v, ok := lookup(raw, path)
			if !ok {
				continue
			}

			if f.each != nil {
				v = eachObject(v, f.each)
			}

			out[f.key] = v

			break
		}
	}

	return out
}

func eachObject(v any, fn func(map[string]any) map[string]any) []any {
	items := asList(v)
	out := make([]any, 0, len(items))

	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}

		out = append(out, fn(obj))
	}

	return out
}

// asObject accepts an object or a string holding a JSON object, which is how
// some attribute blobs are stored.
func asObject(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case string:
		var obj map[string]any
		if err := json.Unmarshal([]byte(val), &obj); err == nil {
			return obj, true
		}
	}

	return nil, false
}

// asList accepts a list or a string holding a JSON list. Anything else is
// treated as empty.
func asList(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case string:
		var list []any
		if err := json.Unmarshal([]byte(val), &list); err == nil {
			return list
		}
	}

	return nil
}
