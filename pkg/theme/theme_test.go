package theme_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-promptgen/pkg/theme"
)

func TestSelector_Defaults(t *testing.T) {
	selector, err := theme.NewSelector()
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	sel, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Theme != theme.Name || sel.Variant != theme.VariantGreen {
		t.Fatalf("unexpected selection %s/%s", sel.Theme, sel.Variant)
	}
	if diff := cmp.Diff([]string{theme.Name}, selector.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestSelector_Unknown(t *testing.T) {
	selector, err := theme.NewSelector()
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	if _, err := selector.Select("solarized", ""); !errors.Is(err, theme.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := selector.Select(theme.Name, "purple"); !errors.Is(err, theme.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme for variant, got %v", err)
	}
}

func TestSelector_RejectsDuplicates(t *testing.T) {
	selector, err := theme.NewSelector()
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	if err := selector.Register(theme.Default()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := selector.Register(&gotheme.Manifest{}); err == nil {
		t.Fatalf("expected error for unnamed manifest")
	}
}

func TestResolve_VariantOverridesTokens(t *testing.T) {
	selector, err := theme.NewSelector()
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	cfg, err := theme.Select(selector, theme.Name, theme.VariantAmber)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if cfg.Variant != theme.VariantAmber {
		t.Fatalf("unexpected variant %q", cfg.Variant)
	}
	if cfg.Tokens["fg"] != "#fbbf24" {
		t.Fatalf("expected amber foreground, got %q", cfg.Tokens["fg"])
	}
	if cfg.Tokens["bg"] != "#000000" {
		t.Fatalf("expected base background kept, got %q", cfg.Tokens["bg"])
	}
	if cfg.CSSVars["--fg"] != "#fbbf24" {
		t.Fatalf("css vars not derived from variant tokens, got %q", cfg.CSSVars["--fg"])
	}
	if got := cfg.AssetURL(theme.AssetStylesheet); got != "/assets/terminal.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}
	if cfg.Partials["screens.prompt"] != "prompt.tpl" {
		t.Fatalf("partials not propagated: %v", cfg.Partials)
	}
}

func TestResolve_VariantAssets(t *testing.T) {
	manifest := &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Assets: gotheme.Assets{
			Prefix: "/assets/acme",
			Files:  map[string]string{"stylesheet": "theme.css", "runtime": "app.js"},
		},
		Variants: map[string]gotheme.Variant{
			"dark": {
				Assets: gotheme.Assets{Files: map[string]string{"stylesheet": "dark.css"}},
			},
		},
	}
	selector, err := theme.NewSelector(manifest)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	cfg, err := theme.Select(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/acme/dark.css" {
		t.Fatalf("unexpected variant stylesheet %q", got)
	}
	if got := cfg.AssetURL("runtime"); got != "/assets/acme/app.js" {
		t.Fatalf("unexpected base runtime %q", got)
	}

	// Without a "green" variant the empty variant selects the base tokens.
	sel, err := selector.Select("acme", "")
	if err != nil {
		t.Fatalf("select base: %v", err)
	}
	if sel.Variant != "" {
		t.Fatalf("expected base variant, got %q", sel.Variant)
	}
}

func TestResolve_Nil(t *testing.T) {
	if theme.Resolve(nil) != nil {
		t.Fatalf("expected nil config for nil selection")
	}
}
