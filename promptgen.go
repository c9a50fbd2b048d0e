// Package promptgen is the top-level entry point: it re-exports the types a
// caller needs to validate registrations, render prompts and mount the
// viewer without importing each package.
package promptgen

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-promptgen/components/promptviewer"
	"github.com/goliatone/go-promptgen/pkg/apispec"
	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
	"github.com/goliatone/go-promptgen/pkg/session"
	"github.com/goliatone/go-promptgen/pkg/theme"
)

// TemplateSet is the event title plus the ordered prompt templates.
type TemplateSet = prompts.TemplateSet

// State is the sanitized pair written at registration.
type State = session.State

// Registration holds raw form values.
type Registration = sanitize.Registration

// RenderOptions describes per-request overrides for screen renderers.
type RenderOptions = render.RenderOptions

// Validate checks one raw value against the allowed character set.
func Validate(input string) sanitize.Result {
	return sanitize.Validate(input)
}

// Sanitize converts a raw value into a slug.
func Sanitize(input string) string {
	return sanitize.Sanitize(input)
}

// DefaultPrompts returns the embedded prompt set.
func DefaultPrompts() (TemplateSet, error) {
	return prompts.Default()
}

// LoadPrompts reads a prompt set from a JSON or YAML file.
func LoadPrompts(path string) (TemplateSet, error) {
	return prompts.Load(path)
}

// RenderPrompt substitutes state into the prompt at the 1-based idx,
// falling back to the first prompt when idx is out of range.
func RenderPrompt(set TemplateSet, idx int, state State) prompts.Rendered {
	return prompts.Render(set, idx, state)
}

// NewViewer builds the HTTP prompt viewer component.
func NewViewer(options ...promptviewer.OptionFn) (*promptviewer.Component, error) {
	return promptviewer.New(options...)
}

// ThemeConfig resolves a theme and variant from selector, or from the
// built-in terminal theme when selector is nil.
func ThemeConfig(selector gotheme.ThemeSelector, name, variant string) (*gotheme.RendererConfig, error) {
	if selector == nil {
		sel, err := theme.NewSelector(theme.Default())
		if err != nil {
			return nil, err
		}
		selector = sel
	}
	return theme.Select(selector, name, variant)
}

// APIDescription returns the validated OpenAPI document of the HTTP surface.
func APIDescription(ctx context.Context) (*openapi3.T, error) {
	return apispec.Load(ctx)
}
