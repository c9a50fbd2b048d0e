package tui

import (
	"github.com/atotto/clipboard"
)

// Clipboard receives copied prompt text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through the operating system clipboard (pbcopy,
// xclip, xsel, wl-copy or the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteAll(text string) error {
	return f(text)
}
