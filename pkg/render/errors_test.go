package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
)

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeFieldErrors(t *testing.T) {
	got := render.NormalizeFieldErrors(map[string][]string{
		" eventName ": {" bad ", "bad", ""},
		"fullName":    {"  "},
		"":            {"dropped"},
	})
	want := map[string][]string{
		"eventName": {"bad"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldErrorsFrom(t *testing.T) {
	errs := sanitize.ValidateRegistration(sanitize.Registration{EventName: "Café", FullName: "John"})
	got := render.FieldErrorsFrom(errs)
	want := map[string][]string{
		sanitize.FieldEventName: {sanitize.Message},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if render.FieldErrorsFrom(nil) != nil {
		t.Fatalf("expected nil for no errors")
	}
}

func TestRenderOptionsAccessors(t *testing.T) {
	opts := render.RenderOptions{
		Values: render.ValuesFrom(sanitize.Registration{EventName: "AI Workshop", FullName: "Jane"}),
		Errors: map[string][]string{sanitize.FieldFullName: {" x ", "x"}},
	}
	if opts.Value(sanitize.FieldEventName) != "AI Workshop" {
		t.Fatalf("unexpected value %q", opts.Value(sanitize.FieldEventName))
	}
	if diff := cmp.Diff([]string{"x"}, opts.FieldErrors(sanitize.FieldFullName)); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	var empty render.RenderOptions
	if empty.Value("x") != "" || empty.FieldErrors("x") != nil {
		t.Fatalf("expected zero accessors on empty options")
	}
}
