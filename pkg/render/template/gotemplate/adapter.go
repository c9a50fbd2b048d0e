package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-promptgen/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	templateFn map[string]any
	globalData map[string]any
	passthru   []gotemplatepkg.Option
}

// WithBaseDir loads templates from a directory on disk. When combined with
// WithFS the directory is consulted first, so files there override embedded
// templates.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".tpl" extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithTemplateFunc registers filters (pongo2 filter functions) or callable
// globals when the engine loads.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFn == nil {
			cfg.templateFn = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFn[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithGoTemplateOptions forwards raw go-template options. They are applied
// after the options above, so they win on conflict.
func WithGoTemplateOptions(options ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		for _, opt := range options {
			if opt != nil {
				cfg.passthru = append(cfg.passthru, opt)
			}
		}
	}
}

// Engine implements template.TemplateRenderer on a go-template engine.
// Template data goes through a JSON round trip, so numbers reach templates
// as floats; print them with the integer filter.
type Engine struct {
	renderer *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Either WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	opts := []gotemplatepkg.Option{
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(defaultFilters()),
	}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	if len(cfg.templateFn) > 0 {
		opts = append(opts, gotemplatepkg.WithTemplateFunc(cfg.templateFn))
	}
	if len(cfg.globalData) > 0 {
		opts = append(opts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}
	opts = append(opts, cfg.passthru...)

	renderer, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load engine: %w", err)
	}
	return &Engine{renderer: renderer}, nil
}

// Render treats name as inline template content when it contains template
// tags and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	result, err := e.renderer.Render(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RenderTemplate executes the named template, appending the configured
// extension when missing. Parsed templates are cached by path.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	result, err := e.renderer.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RenderString parses and executes templateContent. The result is not
// cached.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	result, err := e.renderer.RenderString(templateContent, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return result, nil
}

// RegisterFilter registers fn as a template filter. Filters are process
// wide, so registering an existing name fails.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if err := e.check(); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if err := e.renderer.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if err := e.check(); err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := e.renderer.GlobalContext(data); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

func (e *Engine) check() error {
	if e == nil || e.renderer == nil {
		return errors.New("gotemplate: engine is nil")
	}
	return nil
}
