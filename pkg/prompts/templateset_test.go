package prompts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParse_JSON(t *testing.T) {
	set, err := Parse([]byte(`{"eventTitle":"Go Day","prompts":["a {event_name}","b {full_name}"]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := TemplateSet{EventTitle: "Go Day", Prompts: []string{"a {event_name}", "b {full_name}"}}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("template set mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YAML(t *testing.T) {
	set, err := Parse([]byte("eventTitle: Go Day\nprompts:\n  - |-\n    line one\n    line two\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if set.Len() != 1 || set.Prompts[0] != "line one\nline two" {
		t.Fatalf("unexpected prompts: %#v", set.Prompts)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		substr  string
	}{
		{name: "empty document", input: "  ", substr: "document is empty"},
		{name: "empty prompts", input: `{"eventTitle":"x","prompts":[]}`, wantErr: ErrEmptyPrompts},
		{name: "missing prompts", input: `{"eventTitle":"x"}`, wantErr: ErrEmptyPrompts},
		{name: "missing title", input: `{"prompts":["a"]}`, wantErr: ErrMissingTitle},
		{name: "unknown key", input: `{"eventTitle":"x","prompts":["a"],"extra":true}`, substr: "extra"},
		{name: "multiple documents", input: "eventTitle: x\nprompts: [a]\n---\neventTitle: y\nprompts: [b]\n", substr: "single template set"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.substr != "" && !strings.Contains(err.Error(), tc.substr) {
				t.Fatalf("expected error containing %q, got %v", tc.substr, err)
			}
		})
	}
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte("eventTitle: Disk\nprompts: [one, two]\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	set, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if set.EventTitle != "Disk" || set.Len() != 2 {
		t.Fatalf("unexpected set: %#v", set)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"sets/event.json": {Data: []byte(`{"eventTitle":"FS","prompts":["x"]}`)},
	}
	set, err := LoadFS(fsys, "sets/event.json")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if set.EventTitle != "FS" {
		t.Fatalf("unexpected title %q", set.EventTitle)
	}
	if _, err := LoadFS(nil, "x"); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}
}

func TestDefault_EmbeddedSet(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if set.Len() == 0 {
		t.Fatalf("expected embedded prompts")
	}
	for i, tpl := range set.Prompts {
		if !strings.Contains(tpl, TokenFullName) && !strings.Contains(tpl, TokenEventName) {
			t.Fatalf("prompt %d has no placeholder: %q", i+1, tpl)
		}
	}

	set.Prompts[0] = "mutated"
	again, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if again.Prompts[0] == "mutated" {
		t.Fatalf("expected Default to return a copy")
	}
}

func TestTemplateSet_SlugAndAt(t *testing.T) {
	set := TemplateSet{EventTitle: "AI  Workshop\t2025", Prompts: []string{"a", "b"}}
	if got := set.Slug(); got != "ai-workshop-2025" {
		t.Fatalf("unexpected slug %q", got)
	}
	if tpl, ok := set.At(2); !ok || tpl != "b" {
		t.Fatalf("At(2) = %q, %v", tpl, ok)
	}
	for _, idx := range []int{0, 3, -1} {
		if _, ok := set.At(idx); ok {
			t.Fatalf("At(%d) should be out of range", idx)
		}
	}
}
