package render

import (
	"context"
	"fmt"
)

// TextRenderer emits the substituted prompt as plain text. It backs the raw
// prompt route used as the clipboard source.
type TextRenderer struct{}

var _ Renderer = TextRenderer{}

func (TextRenderer) Name() string        { return "text" }
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render writes the prompt text. Only PromptScreen is supported.
func (TextRenderer) Render(_ context.Context, screen Screen, _ RenderOptions) ([]byte, error) {
	switch s := screen.(type) {
	case PromptScreen:
		return []byte(s.Prompt.Text), nil
	case *PromptScreen:
		if s == nil {
			return nil, fmt.Errorf("render: nil prompt screen")
		}
		return []byte(s.Prompt.Text), nil
	default:
		return nil, fmt.Errorf("render: text renderer cannot draw %T", screen)
	}
}
