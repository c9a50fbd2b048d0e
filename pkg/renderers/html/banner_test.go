package html

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBanner_Aligned(t *testing.T) {
	lines := strings.Split(banner("AI Workshop 2025"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n != bannerWidth+2 {
			t.Fatalf("line %q has width %d", line, n)
		}
	}
	if !strings.HasPrefix(lines[2], "║  AI Workshop 2025 ") {
		t.Fatalf("unexpected title line %q", lines[2])
	}
}

func TestBanner_TruncatesLongTitle(t *testing.T) {
	line := strings.Split(banner(strings.Repeat("x", 100)), "\n")[2]
	if n := utf8.RuneCountInString(line); n != bannerWidth+2 {
		t.Fatalf("long title line has width %d", n)
	}
}

func TestPlainText(t *testing.T) {
	if got := plainText(" <em>AI</em> Workshop "); got != "AI Workshop" {
		t.Fatalf("unexpected plain text %q", got)
	}
	if got := plainText("   "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := cssVarsStyle(map[string]string{"--b": "2", "--a": "1", "--bad": "x;}</style>"})
	want := ":root {\n  --a: 1;\n  --b: 2;\n}"
	if got != want {
		t.Fatalf("unexpected css:\n%s", got)
	}
}

func TestPlainText_KeepsEntitiesDecoded(t *testing.T) {
	if got := plainText("Q&A <i>night</i>"); got != "Q&A night" {
		t.Fatalf("unexpected plain text %q", got)
	}
}
