package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRendererNotFound is returned by Get for unknown names.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry maps renderer names to screen renderers. The viewer looks up the
// page renderer for HTML routes and the raw renderer for plain-text prompts.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds renderer under its Name. A name can be taken only once.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.renderers[name]; taken {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// MustRegister is Register for start-up wiring; it panics on error.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.renderers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// Names lists the registered renderer names in sorted order. The server logs
// it at start-up.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
