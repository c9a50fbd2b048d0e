package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// PromptDriver abstracts the actual TUI implementation so the flow can be
// tested without a real terminal and callers can swap implementations.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns the interactive driver backed by survey. Info
// messages go to out, or stdout when out is nil.
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validator := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return indexOf(cfg.Options, out), nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
