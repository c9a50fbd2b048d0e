package render

import (
	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
	"github.com/goliatone/go-promptgen/pkg/session"
)

// Screen names the two views a renderer knows how to draw.
type Screen interface {
	ScreenName() string
}

const (
	ScreenRegistration = "registration"
	ScreenPrompt       = "prompt"
)

// RegistrationScreen is the form collecting the event and person names.
type RegistrationScreen struct {
	Title  string
	Slug   string
	Action string
	// Input holds the raw values as typed; Submittable is derived from it.
	Input sanitize.Registration
}

func (RegistrationScreen) ScreenName() string { return ScreenRegistration }

// Submittable reports whether the submit control should be enabled.
func (s RegistrationScreen) Submittable() bool {
	return s.Input.Submittable()
}

// PromptScreen is one rendered prompt with its pagination controls. The
// position shown to the user is Navigation.Current, the index that was
// requested; Prompt.Index is the template actually rendered, which differs
// when the request was out of range.
type PromptScreen struct {
	Title      string
	Slug       string
	Prompt     prompts.Rendered
	Navigation prompts.Navigation
	State      session.State
	// RawURL is where the plain-text prompt can be fetched for copying.
	RawURL string
	// RegistrationURL and PromptURL build navigation links.
	RegistrationURL string
	PromptURL       func(index int) string
}

func (PromptScreen) ScreenName() string { return ScreenPrompt }

// Position is the requested prompt index shown in the header.
func (s PromptScreen) Position() int {
	return s.Navigation.Current
}

// FileLabel is the pseudo file name shown above the prompt.
func (s PromptScreen) FileLabel() string {
	return prompts.FileLabel(s.Position())
}

// PreviousLabel is "cd .." on the first prompt and the previous file stem
// otherwise.
func (s PromptScreen) PreviousLabel() string {
	if s.Navigation.Previous.Registration {
		return "cd .."
	}
	return "prompt-" + prompts.Pad(s.Navigation.Previous.Index, 2)
}

// NextLabel names the next prompt; empty when there is none.
func (s PromptScreen) NextLabel() string {
	if !s.Navigation.HasNext {
		return ""
	}
	return "prompt-" + prompts.Pad(s.Navigation.Next.Index, 2)
}

// PreviousURL resolves the previous target into a link.
func (s PromptScreen) PreviousURL() string {
	if s.Navigation.Previous.Registration {
		return s.RegistrationURL
	}
	return s.promptURL(s.Navigation.Previous.Index)
}

// NextURL resolves the next target into a link; empty when there is none.
func (s PromptScreen) NextURL() string {
	if !s.Navigation.HasNext {
		return ""
	}
	return s.promptURL(s.Navigation.Next.Index)
}

func (s PromptScreen) promptURL(index int) string {
	if s.PromptURL == nil {
		return ""
	}
	return s.PromptURL(index)
}
