package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/render"
)

// Renderer draws screens as plain terminal text. It backs the prompt viewer
// of the interactive flow and can be registered alongside the HTML renderer.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// Name reports the renderer identifier.
func (Renderer) Name() string {
	return "tui"
}

func (Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the header and body of screen.
func (Renderer) Render(ctx context.Context, screen render.Screen, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	switch s := screen.(type) {
	case render.RegistrationScreen:
		writeRegistration(&b, s, opts)
	case render.PromptScreen:
		writePrompt(&b, s)
	default:
		return nil, fmt.Errorf("tui: unsupported screen %T", screen)
	}
	return []byte(b.String()), nil
}

func writeRegistration(b *strings.Builder, s render.RegistrationScreen, opts render.RenderOptions) {
	fmt.Fprintf(b, "root@%s:~$\n", s.Slug)
	fmt.Fprintf(b, "EVENT REGISTRATION SYSTEM v2.1.0\n%s\n\n", s.Title)
	b.WriteString("> Loading event registration module... [OK]\n")
	b.WriteString("> Initializing parameter collection... [OK]\n")
	b.WriteString("> Awaiting user input...\n")
	for _, message := range render.MergeFormErrors(opts.FormErrors) {
		fmt.Fprintf(b, "✗ %s\n", message)
	}
}

func writePrompt(b *strings.Builder, s render.PromptScreen) {
	label := s.FileLabel()
	fmt.Fprintf(b, "root@%s:~/prompts$  [%d/%d]\n", s.Slug, s.Position(), s.Prompt.Total)
	fmt.Fprintf(b, "$ cat %s\n", label)
	fmt.Fprintf(b, "> Reading file... %d bytes\n\n", s.Prompt.Bytes())
	for i, line := range s.Prompt.Lines() {
		fmt.Fprintf(b, "%s  %s\n", prompts.Pad(i+1, 3), line)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "$ echo $FULL_NAME=%s\n", s.State.FullName)
	fmt.Fprintf(b, "$ echo $EVENT_NAME=%s\n", s.State.EventName)
}
