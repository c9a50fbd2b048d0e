package html_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/renderers/html"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
	"github.com/goliatone/go-promptgen/pkg/testsupport"
	"github.com/goliatone/go-promptgen/pkg/theme"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
}

func newRenderer(t *testing.T) *html.Renderer {
	t.Helper()
	r, err := html.New(html.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func themeOptions(t *testing.T, variant string) render.RenderOptions {
	t.Helper()
	selector, err := theme.NewSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	cfg, err := theme.Select(selector, theme.Name, variant)
	if err != nil {
		t.Fatalf("select theme: %v", err)
	}
	return render.RenderOptions{Theme: cfg}
}

func assertContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
}

func TestRenderer_Registration(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "html" || !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected renderer identity %q %q", r.Name(), r.ContentType())
	}

	opts := themeOptions(t, theme.VariantGreen)
	opts.Hidden = render.MergeHiddenFields(nil, render.CSRFToken("tok-123"))

	out, err := r.Render(context.Background(), render.RegistrationScreen{
		Title: "AI <b>Workshop</b> 2025",
		Slug:  "ai-workshop-2025",
	}, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	assertContains(t, page,
		"root@ai-workshop-2025",
		"<title>AI Workshop 2025</title>",
		"EVENT REGISTRATION SYSTEM v2.1.0",
		`name="_csrf" value="tok-123"`,
		`name="eventName"`,
		`name="fullName"`,
		"./generate-prompts.sh",
		"2025-03-04 05:06:07",
		"--fg: #4ade80;",
		`href="/assets/terminal.css"`,
		`src="/assets/promptgen.js"`,
	)
	if strings.Contains(page, "<b>Workshop") {
		t.Fatalf("expected title markup to be stripped")
	}
	// Empty form cannot be submitted.
	assertContains(t, page, `class="pg-button" disabled`)
}

func TestRenderer_RegistrationErrorsAndValues(t *testing.T) {
	r := newRenderer(t)

	input := sanitize.Registration{EventName: "Café", FullName: "Jane Doe"}
	opts := render.RenderOptions{
		Values: render.ValuesFrom(input),
		Errors: render.FieldErrorsFrom(sanitize.ValidateRegistration(input)),
	}

	out, err := r.Render(context.Background(), &render.RegistrationScreen{Title: "Event", Slug: "event"}, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	assertContains(t, page,
		`value="Café"`,
		`value="Jane Doe"`,
		sanitize.Message,
		`aria-invalid="true"`,
		`class="pg-button" disabled`,
	)
}

func TestRenderer_RegistrationSubmittable(t *testing.T) {
	r := newRenderer(t)
	opts := render.RenderOptions{Values: render.ValuesFrom(sanitize.Registration{EventName: "AI Workshop", FullName: "John"})}

	out, err := r.Render(context.Background(), render.RegistrationScreen{Title: "Event"}, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), `class="pg-button" disabled`) {
		t.Fatalf("expected submit to be enabled")
	}
	assertContains(t, string(out), `action="/"`)
}

func promptScreen(index int) render.PromptScreen {
	set := testsupport.TemplateSet()
	state := testsupport.State()
	rendered := prompts.Render(set, index, state)
	return render.PromptScreen{
		Title:           set.EventTitle,
		Slug:            set.Slug(),
		Prompt:          rendered,
		Navigation:      prompts.Navigate(rendered.Index, rendered.Total),
		State:           state,
		RawURL:          "/prompt/" + strconv.Itoa(rendered.Index) + "/raw",
		RegistrationURL: "/",
		PromptURL:       func(i int) string { return "/prompt/" + strconv.Itoa(i) },
	}
}

func TestRenderer_PromptFirst(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Render(context.Background(), promptScreen(1), themeOptions(t, theme.VariantAmber))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	assertContains(t, page,
		"root@test-event",
		"~/prompts",
		"/var/prompts/prompt-01.txt",
		"cat prompt-01.txt",
		"Reading file... 44 bytes",
		`<span class="pg-lineno">001</span>`,
		"Hello john-doe, welcome to ai-workshop-2025.",
		`href="/" rel="prev">&lsaquo; cd ..</a>`,
		`href="/prompt/2" rel="next">prompt-02 &rsaquo;</a>`,
		`data-copy-raw="/prompt/1/raw"`,
		`data-reset-ms="2000"`,
		html.CopySuccessTitle,
		html.CopyFailureDescription,
		"--fg: #fbbf24;",
		`data-variant="amber"`,
	)
}

func TestRenderer_PromptLastAndLines(t *testing.T) {
	r := newRenderer(t)

	last := promptScreen(3)
	out, err := r.Render(context.Background(), last, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)
	if strings.Contains(page, `rel="next"`) {
		t.Fatalf("expected no next link on last prompt")
	}
	assertContains(t, page, `href="/prompt/2" rel="prev">&lsaquo; prompt-02</a>`)

	multi := promptScreen(2)
	out, err = r.Render(context.Background(), multi, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, string(out),
		`<span class="pg-lineno">001</span><span class="pg-line">Line one for john-doe</span>`,
		`<span class="pg-lineno">003</span><span class="pg-line">john-doe again</span>`,
	)
}

func TestRenderer_EscapesPromptText(t *testing.T) {
	r := newRenderer(t)
	screen := promptScreen(1)
	screen.Prompt.Text = "<script>alert(1)</script>"

	out, err := r.Render(context.Background(), screen, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>alert") {
		t.Fatalf("expected prompt text to be escaped")
	}
}

func TestRenderer_UnsupportedScreen(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil screen")
	}
}

func TestAssetsFS(t *testing.T) {
	for _, name := range []string{html.StylesheetName, html.RuntimeScriptName} {
		f, err := html.AssetsFS().Open(name)
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		_ = f.Close()
	}
}
