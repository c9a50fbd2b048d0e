package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrClipboardUnavailable is returned by the system clipboard when no
	// clipboard utility is installed.
	ErrClipboardUnavailable = errors.New("tui: clipboard unavailable")
)
