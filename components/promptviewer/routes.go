package promptviewer

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Route is one mounted endpoint.
type Route struct {
	ID      string
	Method  string
	Path    string
	Pattern string
}

// MountPath returns the full path for routePath under basePath.
func MountPath(basePath, routePath string) string {
	return mountPath(basePath, routePath)
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	if routePath == "/" {
		return basePath + "/"
	}
	return basePath + routePath
}

// routes lists the endpoints served under basePath. Path uses the
// documented form ({id}); Pattern is what ServeMux receives.
func routes(basePath string, opts Options) []Route {
	root := mountPath(basePath, "/")
	prompt := mountPath(basePath, opts.PromptPath)
	assets := strings.TrimRight(mountPath(basePath, opts.AssetsPath), "/") + "/"

	return []Route{
		{ID: "showRegistration", Method: http.MethodGet, Path: root, Pattern: "GET " + root + "{$}"},
		{ID: "submitRegistration", Method: http.MethodPost, Path: root, Pattern: "POST " + root + "{$}"},
		{ID: "showPrompt", Method: http.MethodGet, Path: prompt + "/{id}", Pattern: "GET " + prompt + "/{id}"},
		{ID: "rawPrompt", Method: http.MethodGet, Path: prompt + "/{id}/raw", Pattern: "GET " + prompt + "/{id}/raw"},
		{ID: "validateValue", Method: http.MethodGet, Path: mountPath(basePath, opts.ValidatePath), Pattern: "GET " + mountPath(basePath, opts.ValidatePath)},
		{ID: "apiDescription", Method: http.MethodGet, Path: mountPath(basePath, opts.SpecPath), Pattern: "GET " + mountPath(basePath, opts.SpecPath)},
		{ID: "health", Method: http.MethodGet, Path: mountPath(basePath, opts.HealthPath), Pattern: "GET " + mountPath(basePath, opts.HealthPath)},
		{ID: "assets", Method: http.MethodGet, Path: assets, Pattern: "GET " + assets},
	}
}

// RegisterRoutes builds a component from fns and mounts it under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]Route, error) {
	c, err := New(fns...)
	if err != nil {
		return nil, err
	}
	return c.RegisterRoutes(mux, basePath)
}

// RegisterRoutes mounts every endpoint under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]Route, error) {
	if mux == nil {
		return nil, fmt.Errorf("promptviewer: missing mux")
	}
	if c == nil {
		return nil, fmt.Errorf("promptviewer: nil component")
	}

	h := c.handler(basePath)
	mounted := routes(basePath, c.opts)
	handlers := map[string]http.Handler{
		"showRegistration":   http.HandlerFunc(h.showRegistration),
		"submitRegistration": http.HandlerFunc(h.submitRegistration),
		"showPrompt":         http.HandlerFunc(h.showPrompt),
		"rawPrompt":          http.HandlerFunc(h.rawPrompt),
		"validateValue":      http.HandlerFunc(h.validateValue),
		"apiDescription":     h.apiDescription(),
		"health":             http.HandlerFunc(h.health),
	}
	for _, route := range mounted {
		if route.ID == "assets" {
			mux.Handle(route.Pattern, http.StripPrefix(strings.TrimSuffix(route.Path, "/"), h.assets()))
			continue
		}
		mux.Handle(route.Pattern, handlers[route.ID])
	}
	return mounted, nil
}
