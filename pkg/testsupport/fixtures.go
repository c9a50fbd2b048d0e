// Package testsupport holds fixtures and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/session"
)

// TemplateSet returns a three-prompt set exercising both placeholders,
// repeated tokens and multi-line text.
func TemplateSet() prompts.TemplateSet {
	return prompts.TemplateSet{
		EventTitle: "Test Event",
		Prompts: []string{
			"Hello {full_name}, welcome to {event_name}.",
			"Line one for {full_name}\nLine two at {event_name}\n{full_name} again",
			"No placeholders here.",
		},
	}
}

// State returns session values as the registration handler would store them.
func State() session.State {
	return session.State{EventName: "ai-workshop-2025", FullName: "john-doe"}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
