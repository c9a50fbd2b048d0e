package render

import (
	"fmt"
	"sort"
	"strings"
)

// CSRFFieldName is the form field carrying the session's CSRF token.
const CSRFFieldName = "_csrf"

// HiddenField represents a hidden form input emitted alongside the visible
// inputs.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs the hidden field carrying token under CSRFFieldName.
func CSRFToken(token string) HiddenField {
	return Hidden(CSRFFieldName, token)
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields normalises and sorts hidden fields for deterministic
// rendering. Empty names are dropped.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}

	clean := make(map[string]string, len(fields))
	for name, value := range fields {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		clean[key] = value
	}
	if len(clean) == 0 {
		return nil
	}

	names := make([]string, 0, len(clean))
	for name := range clean {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{
			Name:  name,
			Value: clean[name],
		})
	}
	return result
}
