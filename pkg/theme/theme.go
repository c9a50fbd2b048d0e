// Package theme describes the terminal look of both screens as go-theme
// manifests and resolves a selection into renderer configuration.
package theme

import (
	gotheme "github.com/goliatone/go-theme"
)

const (
	// Name is the built-in theme.
	Name = "terminal"

	VariantGreen = "green"
	VariantAmber = "amber"

	// DefaultVariant is used when no variant is requested.
	DefaultVariant = VariantGreen

	// AssetPrefix is where theme assets are mounted.
	AssetPrefix = "/assets"
)

// Asset keys resolved through RendererConfig.AssetURL.
const (
	AssetStylesheet = "stylesheet"
	AssetRuntime    = "runtime"
)

// Default returns the terminal manifest. The base tokens are the green
// phosphor palette; the amber variant swaps the foreground colours.
func Default() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    Name,
		Version: "1.0.0",
		Tokens: map[string]string{
			"font-mono":   `ui-monospace, SFMono-Regular, Menlo, Consolas, "Liberation Mono", monospace`,
			"bg":          "#000000",
			"surface":     "#052e16",
			"border":      "#14532d",
			"fg":          "#4ade80",
			"fg-strong":   "#22c55e",
			"fg-muted":    "#16a34a",
			"fg-dim":      "#15803d",
			"fg-faint":    "#166534",
			"accent":      "#60a5fa",
			"error":       "#ef4444",
			"error-muted": "#f87171",
			"glow":        "rgba(0, 255, 0, 0.15)",
		},
		Templates: map[string]string{
			"screens.registration": "registration.tpl",
			"screens.prompt":       "prompt.tpl",
		},
		Assets: gotheme.Assets{
			Prefix: AssetPrefix,
			Files: map[string]string{
				AssetStylesheet: "terminal.css",
				AssetRuntime:    "promptgen.js",
			},
		},
		Variants: map[string]gotheme.Variant{
			VariantGreen: {},
			VariantAmber: {
				Tokens: map[string]string{
					"surface":   "#451a03",
					"border":    "#78350f",
					"fg":        "#fbbf24",
					"fg-strong": "#f59e0b",
					"fg-muted":  "#d97706",
					"fg-dim":    "#b45309",
					"fg-faint":  "#92400e",
					"glow":      "rgba(255, 176, 0, 0.15)",
				},
			},
		},
	}
}
