package promptviewer

import (
	"io/fs"
	"net/http"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/session"
)

// ErrorFunc observes errors answered with a 5xx status.
type ErrorFunc func(r *http.Request, err error)

type Options struct {
	// Templates is the prompt set. A zero value loads the embedded set.
	Templates prompts.TemplateSet
	// Sessions binds registrations to browser sessions. Nil uses an in-memory
	// store.
	Sessions *session.Manager
	// Renderers must contain PageRenderer and RawRenderer. Nil registers the
	// HTML and text renderers.
	Renderers    *render.Registry
	PageRenderer string
	RawRenderer  string
	// Theme is passed to the page renderer. Nil resolves the default theme.
	Theme *gotheme.RendererConfig
	// Assets is served under AssetsPath. Nil serves the embedded assets.
	Assets fs.FS

	PromptPath   string
	ValidatePath string
	SpecPath     string
	AssetsPath   string
	HealthPath   string

	// MaxFormBytes caps the registration request body.
	MaxFormBytes int64

	OnError ErrorFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		PageRenderer: "html",
		RawRenderer:  "text",
		PromptPath:   "/prompt",
		ValidatePath: "/api/validate",
		SpecPath:     "/openapi.yaml",
		AssetsPath:   "/assets",
		HealthPath:   "/healthz",
		MaxFormBytes: 64 << 10,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	defaults := DefaultOptions()
	if opts.PageRenderer == "" {
		opts.PageRenderer = defaults.PageRenderer
	}
	if opts.RawRenderer == "" {
		opts.RawRenderer = defaults.RawRenderer
	}
	if opts.PromptPath == "" {
		opts.PromptPath = defaults.PromptPath
	}
	if opts.ValidatePath == "" {
		opts.ValidatePath = defaults.ValidatePath
	}
	if opts.SpecPath == "" {
		opts.SpecPath = defaults.SpecPath
	}
	if opts.AssetsPath == "" {
		opts.AssetsPath = defaults.AssetsPath
	}
	if opts.HealthPath == "" {
		opts.HealthPath = defaults.HealthPath
	}
	if opts.MaxFormBytes <= 0 {
		opts.MaxFormBytes = defaults.MaxFormBytes
	}
	if opts.Templates.Prompts != nil {
		opts.Templates.Prompts = append([]string{}, opts.Templates.Prompts...)
	}
	return opts
}

func WithTemplates(set prompts.TemplateSet) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Templates = set
	}
}

func WithSessions(m *session.Manager) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sessions = m
	}
}

func WithRenderers(registry *render.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderers = registry
	}
}

func WithPageRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PageRenderer = name
	}
}

func WithTheme(cfg *gotheme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}

func WithAssets(files fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Assets = files
	}
}

func WithPromptPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PromptPath = path
	}
}

func WithMaxFormBytes(n int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxFormBytes = n
	}
}

func WithErrorHandler(fn ErrorFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnError = fn
	}
}
