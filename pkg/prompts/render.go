package prompts

import (
	"strings"

	"github.com/goliatone/go-promptgen/pkg/session"
)

// Placeholder tokens recognised in templates.
const (
	TokenEventName = "{event_name}"
	TokenFullName  = "{full_name}"
)

// Rendered is a template with every placeholder replaced, plus the sequence
// metadata the viewer needs.
type Rendered struct {
	Index int
	Total int
	Text  string
}

// Lines splits the rendered text into display lines.
func (r Rendered) Lines() []string {
	return strings.Split(r.Text, "\n")
}

// Bytes returns the length of the rendered text in bytes.
func (r Rendered) Bytes() int {
	return len(r.Text)
}

// ResolveIndex maps a requested position onto a valid one. Anything outside
// [1, total] resolves to 1.
func ResolveIndex(idx, total int) int {
	if idx < 1 || idx > total {
		return 1
	}
	return idx
}

// Render substitutes state into the template at idx. Out-of-range positions
// fall back to the first template without an error.
func Render(set TemplateSet, idx int, state session.State) Rendered {
	total := set.Len()
	resolved := ResolveIndex(idx, total)
	tpl, _ := set.At(resolved)
	return Rendered{
		Index: resolved,
		Total: total,
		Text:  Substitute(tpl, state),
	}
}

// Substitute replaces every {event_name} and {full_name} token in tpl. A single
// left-to-right pass is used so values containing a token are not expanded
// again.
func Substitute(tpl string, state session.State) string {
	replacer := strings.NewReplacer(
		TokenEventName, state.EventName,
		TokenFullName, state.FullName,
	)
	return replacer.Replace(tpl)
}
