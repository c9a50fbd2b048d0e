package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
	"github.com/goliatone/go-promptgen/pkg/session"
)

// Copy notifications, matching the browser toast.
const (
	CopySuccess = "✓ Copied to clipboard"
	CopyFailure = "✗ Copy failed"
)

// ErrRequired is reported by the input validator for blank values.
var ErrRequired = errors.New("a value is required")

type action int

const (
	actionCopy action = iota
	actionPrevious
	actionNext
	actionQuit
)

// Flow runs the registration screen followed by the prompt viewer in a
// terminal. The session lives for the duration of Run.
type Flow struct {
	set       prompts.TemplateSet
	driver    PromptDriver
	clipboard Clipboard
	screens   render.Renderer
	out       io.Writer
	theme     Theme

	state session.State
}

// New constructs a Flow over set with defaults (survey driver, system
// clipboard).
func New(set prompts.TemplateSet, options ...Option) (*Flow, error) {
	if set.Len() == 0 {
		return nil, prompts.ErrEmptyPrompts
	}
	f := &Flow{
		set:       set,
		clipboard: SystemClipboard{},
		screens:   Renderer{},
		out:       os.Stdout,
		theme:     DefaultTheme,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(f.out)
	}
	return f, nil
}

// State returns the values written by the last registration.
func (f *Flow) State() session.State {
	return f.state
}

// Run drives the flow until the user quits or aborts. Quitting returns nil;
// Ctrl+C returns ErrAborted.
func (f *Flow) Run(ctx context.Context) error {
	for {
		if err := f.register(ctx); err != nil {
			return err
		}
		back, err := f.view(ctx, 1)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

func (f *Flow) register(ctx context.Context) error {
	screen := render.RegistrationScreen{Title: f.set.EventTitle, Slug: f.set.Slug()}
	if err := f.show(ctx, screen); err != nil {
		return err
	}

	for {
		eventName, err := f.driver.Input(ctx, InputConfig{
			Message:   "export EVENT_NAME=",
			Help:      "AI Workshop 2025",
			Validator: validateInput,
		})
		if err != nil {
			return err
		}
		fullName, err := f.driver.Input(ctx, InputConfig{
			Message:   "export FULL_NAME=",
			Help:      "John Doe",
			Validator: validateInput,
		})
		if err != nil {
			return err
		}

		reg := sanitize.Registration{EventName: eventName, FullName: fullName}
		if reg.Submittable() {
			clean := reg.Sanitized()
			f.state = session.State{EventName: clean.EventName, FullName: clean.FullName}
			return nil
		}
		// Drivers without live validation land here.
		problem := validateInput(eventName)
		if problem == nil {
			problem = validateInput(fullName)
		}
		if problem == nil {
			problem = errors.New(sanitize.Message)
		}
		if err := f.info(ctx, f.theme.ErrorPrefix+problem.Error()); err != nil {
			return err
		}
	}
}

// view shows prompts starting at idx. It reports whether the user navigated
// back to registration.
func (f *Flow) view(ctx context.Context, idx int) (bool, error) {
	for {
		state, ok := session.Guard(session.Record{State: f.state}, true)
		if !ok {
			return true, nil
		}

		rendered := prompts.Render(f.set, idx, state)
		nav := prompts.Navigate(idx, rendered.Total)
		screen := render.PromptScreen{
			Title:      f.set.EventTitle,
			Slug:       f.set.Slug(),
			Prompt:     rendered,
			Navigation: nav,
			State:      state,
		}
		if err := f.show(ctx, screen); err != nil {
			return false, err
		}

		labels, actions := menu(screen)
		choice, err := f.driver.Select(ctx, SelectConfig{
			Message: "$",
			Options: labels,
		})
		if err != nil {
			return false, err
		}
		if choice < 0 || choice >= len(actions) {
			return false, fmt.Errorf("tui: invalid selection %d", choice)
		}

		switch actions[choice] {
		case actionCopy:
			if err := f.copy(ctx, rendered.Text); err != nil {
				return false, err
			}
		case actionPrevious:
			if nav.Previous.Registration {
				return true, nil
			}
			idx = nav.Previous.Index
		case actionNext:
			idx = nav.Next.Index
		case actionQuit:
			return false, nil
		}
	}
}

func menu(screen render.PromptScreen) ([]string, []action) {
	labels := []string{"pbcopy < " + screen.FileLabel(), screen.PreviousLabel()}
	actions := []action{actionCopy, actionPrevious}
	if next := screen.NextLabel(); next != "" {
		labels = append(labels, next)
		actions = append(actions, actionNext)
	}
	labels = append(labels, "exit")
	actions = append(actions, actionQuit)
	return labels, actions
}

// copy writes text once; failures are reported and the viewer stays put.
func (f *Flow) copy(ctx context.Context, text string) error {
	if err := f.clipboard.WriteAll(text); err != nil {
		return f.info(ctx, f.theme.ErrorPrefix+CopyFailure+": Failed to copy prompt")
	}
	return f.info(ctx, f.theme.InfoPrefix+CopySuccess+": Prompt copied successfully")
}

func (f *Flow) show(ctx context.Context, screen render.Screen) error {
	out, err := f.screens.Render(ctx, screen, render.RenderOptions{})
	if err != nil {
		return err
	}
	return f.info(ctx, strings.TrimRight(string(out), "\n"))
}

func (f *Flow) info(ctx context.Context, msg string) error {
	return f.driver.Info(ctx, msg)
}

func validateInput(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequired
	}
	if res := sanitize.Validate(value); !res.Valid {
		return errors.New(res.Message)
	}
	return nil
}
