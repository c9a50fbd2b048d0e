package tui

import (
	"io"
)

// Theme captures the message prefixes the flow prints. Keep minimal to avoid
// coupling flow logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme mirrors the boot lines of the web screens.
var DefaultTheme = Theme{InfoPrefix: "> ", ErrorPrefix: "! "}

// Option configures the Flow.
type Option func(*Flow)

// WithPromptDriver overrides the prompt driver used by the flow.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Flow) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithClipboard overrides the clipboard used by the copy action.
func WithClipboard(cb Clipboard) Option {
	return func(f *Flow) {
		if cb != nil {
			f.clipboard = cb
		}
	}
}

// WithOutput sets where the default survey driver prints screens.
func WithOutput(out io.Writer) Option {
	return func(f *Flow) {
		if out != nil {
			f.out = out
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(f *Flow) {
		f.theme = theme
	}
}
