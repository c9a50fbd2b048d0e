package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	StylesheetName    = "terminal.css"
	RuntimeScriptName = "promptgen.js"
)

// TemplatesFS exposes the embedded screen templates (layout, registration,
// prompt) rooted at the template directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the stylesheet and browser runtime so callers can serve
// them over HTTP.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
