package promptviewer

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-promptgen/pkg/apispec"
	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/renderers/html"
	"github.com/goliatone/go-promptgen/pkg/session"
	"github.com/goliatone/go-promptgen/pkg/theme"
)

// Component is a reusable prompt viewer that can be mounted on any net/http
// mux.
type Component struct {
	opts Options
}

// New applies fns over DefaultOptions and fills every unset collaborator:
// the embedded prompt set, an in-memory session manager, the html and text
// renderers and the default terminal theme.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)

	if opts.Templates.Len() == 0 {
		set, err := prompts.Default()
		if err != nil {
			return nil, fmt.Errorf("promptviewer: load prompts: %w", err)
		}
		opts.Templates = set
	}
	if opts.Sessions == nil {
		opts.Sessions = session.NewManager(nil)
	}
	if opts.Renderers == nil {
		registry := render.NewRegistry()
		page, err := html.New()
		if err != nil {
			return nil, fmt.Errorf("promptviewer: html renderer: %w", err)
		}
		registry.MustRegister(page)
		registry.MustRegister(render.TextRenderer{})
		opts.Renderers = registry
	}
	for _, name := range []string{opts.PageRenderer, opts.RawRenderer} {
		if !opts.Renderers.Has(name) {
			return nil, fmt.Errorf("promptviewer: %w: %q", render.ErrRendererNotFound, name)
		}
	}
	if opts.Theme == nil {
		selector, err := theme.NewSelector(theme.Default())
		if err != nil {
			return nil, fmt.Errorf("promptviewer: theme: %w", err)
		}
		cfg, err := theme.Select(selector, theme.Name, theme.DefaultVariant)
		if err != nil {
			return nil, fmt.Errorf("promptviewer: theme: %w", err)
		}
		opts.Theme = cfg
	}
	if opts.Assets == nil {
		opts.Assets = html.AssetsFS()
	}

	return &Component{opts: opts}, nil
}

// Options returns a copy of the resolved options.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.opts
}

// Handler returns the component mounted at "/" on its own mux.
func (c *Component) Handler() http.Handler {
	mux := http.NewServeMux()
	_, _ = c.RegisterRoutes(mux, "/")
	return mux
}

// Routes lists the endpoints RegisterRoutes mounts under basePath.
func (c *Component) Routes(basePath string) []Route {
	return routes(basePath, c.Options())
}

// VerifyOperations reports an error naming every documented operation that
// has no mounted route with the same method and path.
func VerifyOperations(mounted []Route, ops []apispec.Operation) error {
	index := make(map[string]struct{}, len(mounted))
	for _, route := range mounted {
		index[route.Method+" "+route.Path] = struct{}{}
	}
	var missing []string
	for _, op := range ops {
		if _, ok := index[op.Method+" "+op.Path]; !ok {
			missing = append(missing, fmt.Sprintf("%s (%s %s)", op.ID, op.Method, op.Path))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("promptviewer: undocumented routes missing: %v", missing)
	}
	return nil
}
