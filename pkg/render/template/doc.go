// Package template defines the template rendering seam used by the screen
// renderers. The gotemplate subpackage provides the pongo2 implementation.
package template
