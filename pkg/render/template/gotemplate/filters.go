package gotemplate

import (
	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-promptgen/pkg/prompts"
)

// lineNumberWidth is the padding used for numbered prompt lines.
const lineNumberWidth = 3

// defaultFilters are added next to the go-template defaults (trim,
// lowerfirst).
func defaultFilters() map[string]any {
	return map[string]any{
		"zeropad": pongo2.FilterFunction(filterZeroPad),
		"lineno":  pongo2.FilterFunction(filterLineNo),
	}
}

// filterZeroPad left-pads an integer with zeros: {{ 3|zeropad:2 }} is "03".
// The width defaults to 2.
func filterZeroPad(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	width := 2
	if param != nil && param.IsNumber() && param.Integer() > 0 {
		width = param.Integer()
	}
	return pongo2.AsValue(prompts.Pad(in.Integer(), width)), nil
}

// filterLineNo formats a zero-based loop counter as a padded line number, so
// {{ forloop.Counter0|lineno }} yields 001 on the first line.
func filterLineNo(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(prompts.Pad(in.Integer()+1, lineNumberWidth)), nil
}
