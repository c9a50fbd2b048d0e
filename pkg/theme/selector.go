package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ErrUnknownTheme is returned when a theme or variant is not registered.
var ErrUnknownTheme = errors.New("theme: unknown theme")

type manifestRegistry interface {
	Register(manifest *gotheme.Manifest) error
}

// Selector picks a manifest and variant by name. It satisfies
// gotheme.ThemeSelector. Empty names fall back to the defaults.
type Selector struct {
	mu             sync.RWMutex
	registry       manifestRegistry
	manifests      map[string]*gotheme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ gotheme.ThemeSelector = (*Selector)(nil)

// NewSelector registers manifests. With no manifests the terminal theme is
// used. The first manifest becomes the default theme.
func NewSelector(manifests ...*gotheme.Manifest) (*Selector, error) {
	if len(manifests) == 0 {
		manifests = []*gotheme.Manifest{Default()}
	}
	s := &Selector{
		registry:       gotheme.NewRegistry(),
		manifests:      make(map[string]*gotheme.Manifest, len(manifests)),
		defaultVariant: DefaultVariant,
	}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds manifest to the selector.
func (s *Selector) Register(manifest *gotheme.Manifest) error {
	if manifest == nil {
		return errors.New("theme: manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("theme: manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("theme: %q already registered", name)
	}
	if err := s.registry.Register(manifest); err != nil {
		return fmt.Errorf("theme: register %q: %w", name, err)
	}
	s.manifests[name] = manifest
	if s.defaultTheme == "" {
		s.defaultTheme = name
	}
	return nil
}

// Names lists registered theme names.
func (s *Selector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves name and variant. A variant the manifest does not declare
// is an error; an empty variant selects the default when the manifest
// declares it and the base tokens otherwise.
func (s *Selector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	variant = strings.TrimSpace(variant)
	if variant == "" {
		if _, ok := manifest.Variants[s.defaultVariant]; ok {
			variant = s.defaultVariant
		}
	} else if _, ok := manifest.Variants[variant]; !ok {
		return nil, fmt.Errorf("%w: variant %q of %q", ErrUnknownTheme, variant, name)
	}

	return &gotheme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
