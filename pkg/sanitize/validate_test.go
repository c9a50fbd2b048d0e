package sanitize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate_Allowed(t *testing.T) {
	for _, in := range []string{
		"",
		"AI Workshop 2025",
		"John Doe-Smith",
		"tabs\tand\nnewlines",
		"nbsp\u00a0ideographic\u3000bom\ufeff",
		"en\u2000quad\u200ahair\u2028sep",
		"---",
	} {
		if res := Validate(in); !res.Valid || res.Message != "" {
			t.Fatalf("Validate(%q) = %+v, want valid", in, res)
		}
	}
}

func TestValidate_Rejected(t *testing.T) {
	for _, in := range []string{
		"José",
		"Hello!",
		"a_b",
		"O'Brien",
		"emoji 🎉",
		"next\u0085line",
		"zero\u200bwidth",
		"Привет",
	} {
		res := Validate(in)
		if res.Valid {
			t.Fatalf("Validate(%q) unexpectedly valid", in)
		}
		if res.Message != Message {
			t.Fatalf("Validate(%q) message = %q", in, res.Message)
		}
	}
}

func TestValidateRegistration(t *testing.T) {
	errs := ValidateRegistration(Registration{EventName: "Go Day!", FullName: ""})
	want := Errors{FieldEventName: Message}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !errs.Has(FieldEventName) || errs.Has(FieldFullName) {
		t.Fatalf("unexpected Has results: %#v", errs)
	}

	if errs := ValidateRegistration(Registration{EventName: "Go Day", FullName: "Ada"}); errs != nil {
		t.Fatalf("expected nil errors, got %#v", errs)
	}
}

func TestRegistration_Submittable(t *testing.T) {
	tests := []struct {
		name string
		reg  Registration
		want bool
	}{
		{"both valid", Registration{EventName: "AI Workshop", FullName: "John Doe"}, true},
		{"missing event", Registration{EventName: "", FullName: "John Doe"}, false},
		{"blank name", Registration{EventName: "AI Workshop", FullName: "   "}, false},
		{"invalid name", Registration{EventName: "AI Workshop", FullName: "Jöhn"}, false},
		{"hyphen only passes gate", Registration{EventName: "-", FullName: "-"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.reg.Submittable(); got != tc.want {
				t.Fatalf("Submittable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRegistration_Sanitized(t *testing.T) {
	got := Registration{EventName: "AI Workshop 2025", FullName: "  John   Doe -- Jr  "}.Sanitized()
	want := Registration{EventName: "ai-workshop-2025", FullName: "john-doe-jr"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitized mismatch (-want +got):\n%s", diff)
	}
}
