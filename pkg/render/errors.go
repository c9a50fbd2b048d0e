package render

import (
	"strings"

	"github.com/goliatone/go-promptgen/pkg/sanitize"
)

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// NormalizeFieldErrors trims and dedupes every field's messages, dropping
// fields left without any.
func NormalizeFieldErrors(errs map[string][]string) map[string][]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for field, messages := range errs {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}
		normalized := normalizeMessages(append(out[name], messages...))
		if len(normalized) == 0 {
			continue
		}
		out[name] = normalized
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FieldErrorsFrom adapts sanitizer errors to the renderer's multi-message
// shape.
func FieldErrorsFrom(errs sanitize.Errors) map[string][]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for field, message := range errs {
		out[field] = []string{message}
	}
	return NormalizeFieldErrors(out)
}

// ValuesFrom returns the raw registration input keyed by field name.
func ValuesFrom(reg sanitize.Registration) map[string]string {
	return map[string]string{
		sanitize.FieldEventName: reg.EventName,
		sanitize.FieldFullName:  reg.FullName,
	}
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
