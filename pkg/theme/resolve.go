package theme

import (
	"path"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Resolve flattens a selection into the configuration handed to renderers:
// variant tokens, templates and assets override the base ones, and every
// token is exposed as a CSS custom property named --<token>.
func Resolve(sel *gotheme.Selection) *gotheme.RendererConfig {
	if sel == nil || sel.Manifest == nil {
		return nil
	}
	manifest := sel.Manifest
	variant := manifest.Variants[sel.Variant]

	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	prefix := manifest.Assets.Prefix
	if strings.TrimSpace(variant.Assets.Prefix) != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)

	return &gotheme.RendererConfig{
		Theme:    sel.Theme,
		Variant:  sel.Variant,
		Partials: mergeStrings(manifest.Templates, variant.Templates),
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
				return file
			}
			return path.Join("/", prefix, file)
		},
	}
}

// Select is a shortcut for selector.Select followed by Resolve.
func Select(selector gotheme.ThemeSelector, name, variant string) (*gotheme.RendererConfig, error) {
	sel, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return Resolve(sel), nil
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}
