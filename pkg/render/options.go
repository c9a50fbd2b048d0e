package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the screen.
type RenderOptions struct {
	// Values pre-populates registration inputs keyed by field name
	// ("eventName", "fullName"). Values are echoed back raw so the user can
	// correct them.
	Values map[string]string
	// Errors surfaces server-side validation feedback keyed by field name.
	Errors map[string][]string
	// FormErrors carries messages that do not belong to a single field.
	FormErrors []string
	// Hidden adds hidden inputs (CSRF token) to forms.
	Hidden map[string]string
	// Theme carries the resolved theme tokens and CSS variables.
	Theme *theme.RendererConfig
}

// Value returns the prefill for name.
func (o RenderOptions) Value(name string) string {
	if o.Values == nil {
		return ""
	}
	return o.Values[name]
}

// FieldErrors returns the normalised messages for name.
func (o RenderOptions) FieldErrors(name string) []string {
	if o.Errors == nil {
		return nil
	}
	return normalizeMessages(o.Errors[name])
}
