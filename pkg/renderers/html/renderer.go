package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-promptgen/pkg/render"
	rendertemplate "github.com/goliatone/go-promptgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-promptgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
	pgtheme "github.com/goliatone/go-promptgen/pkg/theme"
)

// Copy notifications shown by the browser runtime.
const (
	CopySuccessTitle       = "✓ Copied to clipboard"
	CopySuccessDescription = "Prompt copied successfully"
	CopyFailureTitle       = "✗ Copy failed"
	CopyFailureDescription = "Failed to copy prompt"

	// CopyResetAfter is how long the copied indicator stays on.
	CopyResetAfter = 2 * time.Second
)

const timestampLayout = "2006-01-02 15:04:05"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	now              func() time.Time
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithClock overrides the clock used for the status bar timestamp.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// Renderer draws both screens as HTML pages.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	now       func() time.Time
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), now: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, now: cfg.now}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws screen. RegistrationScreen and PromptScreen (or pointers to
// them) are supported.
func (r *Renderer) Render(ctx context.Context, screen render.Screen, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		name string
		data map[string]any
	)
	switch s := screen.(type) {
	case render.RegistrationScreen:
		name, data = "registration", r.registrationContext(s, options)
	case *render.RegistrationScreen:
		if s == nil {
			return nil, fmt.Errorf("html renderer: nil screen")
		}
		name, data = "registration", r.registrationContext(*s, options)
	case render.PromptScreen:
		name, data = "prompt", r.promptContext(s, options)
	case *render.PromptScreen:
		if s == nil {
			return nil, fmt.Errorf("html renderer: nil screen")
		}
		name, data = "prompt", r.promptContext(*s, options)
	default:
		return nil, fmt.Errorf("html renderer: unsupported screen %T", screen)
	}

	result, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render %s: %w", name, err)
	}
	return []byte(result), nil
}

func (r *Renderer) registrationContext(s render.RegistrationScreen, options render.RenderOptions) map[string]any {
	title := plainText(s.Title)

	values := options.Values
	if values == nil {
		values = render.ValuesFrom(s.Input)
	}

	fields := []any{
		fieldContext(sanitize.FieldEventName, "EVENT_NAME", "AI Workshop 2025", values, options),
		fieldContext(sanitize.FieldFullName, "FULL_NAME", "John Doe", values, options),
	}

	hidden := make([]any, 0, len(options.Hidden))
	for _, field := range render.SortedHiddenFields(options.Hidden) {
		hidden = append(hidden, map[string]any{"name": field.Name, "value": field.Value})
	}

	action := s.Action
	if action == "" {
		action = "/"
	}

	input := sanitize.Registration{
		EventName: values[sanitize.FieldEventName],
		FullName:  values[sanitize.FieldFullName],
	}

	return map[string]any{
		"screen":            render.ScreenRegistration,
		"title":             title,
		"slug":              s.Slug,
		"banner":            banner(title),
		"action":            action,
		"fields":            fields,
		"hidden":            hidden,
		"formErrors":        stringsToAny(render.MergeFormErrors(options.FormErrors)),
		"submittable":       input.Submittable(),
		"validationMessage": sanitize.Message,
		"now":               r.timestamp(),
		"theme":             themeContext(options.Theme),
	}
}

func fieldContext(name, variable, placeholder string, values map[string]string, options render.RenderOptions) map[string]any {
	return map[string]any{
		"name":        name,
		"variable":    variable,
		"placeholder": placeholder,
		"value":       values[name],
		"errors":      stringsToAny(options.FieldErrors(name)),
	}
}

func (r *Renderer) promptContext(s render.PromptScreen, options render.RenderOptions) map[string]any {
	var next any
	if s.Navigation.HasNext {
		next = map[string]any{"label": s.NextLabel(), "url": s.NextURL()}
	}

	return map[string]any{
		"screen":    render.ScreenPrompt,
		"title":     plainText(s.Title),
		"slug":      s.Slug,
		"fileLabel": s.FileLabel(),
		"index":     s.Position(),
		"total":     s.Prompt.Total,
		"bytes":     s.Prompt.Bytes(),
		"lines":     stringsToAny(s.Prompt.Lines()),
		"text":      s.Prompt.Text,
		"rawURL":    s.RawURL,
		"previous":  map[string]any{"label": s.PreviousLabel(), "url": s.PreviousURL()},
		"next":      next,
		"state": map[string]any{
			"eventName": s.State.EventName,
			"fullName":  s.State.FullName,
		},
		"toast": map[string]any{
			"successTitle":       CopySuccessTitle,
			"successDescription": CopySuccessDescription,
			"failureTitle":       CopyFailureTitle,
			"failureDescription": CopyFailureDescription,
			"resetMs":            int(CopyResetAfter / time.Millisecond),
		},
		"now":   r.timestamp(),
		"theme": themeContext(options.Theme),
	}
}

func (r *Renderer) timestamp() string {
	return r.now().UTC().Format(timestampLayout)
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	out := map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"cssVars": cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		out["stylesheet"] = cfg.AssetURL(pgtheme.AssetStylesheet)
		out["runtime"] = cfg.AssetURL(pgtheme.AssetRuntime)
	}
	return out
}

// cssVarsStyle renders custom properties as a :root rule in key order.
// Values containing characters that could close the style element are
// dropped.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		value := vars[key]
		if strings.ContainsAny(key+value, "<>{};") {
			continue
		}
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func stringsToAny(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}
