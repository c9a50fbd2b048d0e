package promptviewer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-promptgen/pkg/apispec"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
	"github.com/goliatone/go-promptgen/pkg/session"
	"github.com/goliatone/go-promptgen/pkg/testsupport"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	cases := []struct {
		base, route, want string
	}{
		{base: "", route: "/prompt", want: "/prompt"},
		{base: "/", route: "/", want: "/"},
		{base: "/app", route: "/", want: "/app/"},
		{base: "app/", route: "prompt", want: "/app/prompt"},
		{base: "/app/", route: "/healthz", want: "/app/healthz"},
	}
	for _, tc := range cases {
		if got := MountPath(tc.base, tc.route); got != tc.want {
			t.Fatalf("MountPath(%q, %q) = %q, want %q", tc.base, tc.route, got, tc.want)
		}
	}
}

func TestRoutes_CoverDocumentedOperations(t *testing.T) {
	spec, err := apispec.Load(context.Background())
	if err != nil {
		t.Fatalf("load api description: %v", err)
	}
	c := newTestComponent(t)
	if err := VerifyOperations(c.Routes("/"), apispec.Operations(spec)); err != nil {
		t.Fatalf("expected all operations mounted: %v", err)
	}

	err = VerifyOperations(c.Routes("/"), []apispec.Operation{{ID: "missing", Method: http.MethodGet, Path: "/nope"}})
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected missing operation error, got %v", err)
	}
}

func TestRegisterRoutes_UnderBasePath(t *testing.T) {
	mux := http.NewServeMux()
	mounted, err := RegisterRoutes(mux, "/app",
		WithTemplates(testsupport.TemplateSet()),
		WithSessions(session.NewManager(nil, session.WithIDGenerator(sequentialIDs()))),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mounted) == 0 || mounted[0].Path != "/app/" {
		t.Fatalf("unexpected routes %#v", mounted)
	}

	res := do(t, mux, httptest.NewRequest(http.MethodGet, "/app/", nil))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if body := readBody(t, res); !strings.Contains(body, "/app/assets/") {
		t.Fatalf("expected asset links under the base path")
	}
	cookie := sessionCookie(t, res)

	res = do(t, mux, postForm(cookie, "/app/", url.Values{
		sanitize.FieldEventName: {"Event"},
		sanitize.FieldFullName:  {"Name"},
		render.CSRFFieldName:    {"id-2"},
	}))
	if loc := res.Header.Get("Location"); res.StatusCode != http.StatusSeeOther || loc != "/app/prompt/1" {
		t.Fatalf("unexpected response %d %q", res.StatusCode, loc)
	}

	res = do(t, mux, httptest.NewRequest(http.MethodGet, "/app/prompt/1", nil))
	if loc := res.Header.Get("Location"); loc != "/app/" {
		t.Fatalf("unexpected guard redirect %q", loc)
	}

	res = do(t, mux, httptest.NewRequest(http.MethodGet, "/app/assets/terminal.css", nil))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected asset under base path, got %d", res.StatusCode)
	}
}

func TestRegisterRoutes_NilMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestNew_UnknownRenderer(t *testing.T) {
	if _, err := New(WithPageRenderer("pdf")); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}
