package promptviewer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-promptgen/pkg/apispec"
	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/render"
	"github.com/goliatone/go-promptgen/pkg/sanitize"
	"github.com/goliatone/go-promptgen/pkg/session"
)

// Form-level messages for submissions the browser would have blocked.
const (
	MessageRequired = "Both fields are required."
	MessageInvalid  = "Please correct the highlighted fields."
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type validateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type handler struct {
	opts     Options
	basePath string
	theme    *gotheme.RendererConfig
}

func (c *Component) handler(basePath string) *handler {
	h := &handler{opts: c.opts, basePath: basePath, theme: c.opts.Theme}
	if h.theme != nil && basePath != "" && basePath != "/" && h.theme.AssetURL != nil {
		cfg := *h.theme
		assetURL := h.theme.AssetURL
		cfg.AssetURL = func(key string) string {
			url := assetURL(key)
			if url == "" || url[0] != '/' {
				return url
			}
			return mountPath(basePath, url)
		}
		h.theme = &cfg
	}
	return h
}

func (h *handler) rootURL() string {
	return mountPath(h.basePath, "/")
}

func (h *handler) promptURL(index int) string {
	return mountPath(h.basePath, h.opts.PromptPath) + "/" + strconv.Itoa(index)
}

func (h *handler) showRegistration(w http.ResponseWriter, r *http.Request) {
	_, rec, err := h.opts.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.renderRegistration(w, r, http.StatusOK, rec.CSRFToken, sanitize.Registration{}, nil, nil)
}

func (h *handler) submitRegistration(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxFormBytes)
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.writeError(w, r, StatusError{Code: status, Err: err})
		return
	}

	input := sanitize.Registration{
		EventName: r.PostForm.Get(sanitize.FieldEventName),
		FullName:  r.PostForm.Get(sanitize.FieldFullName),
	}
	token := r.PostForm.Get(render.CSRFFieldName)

	rec, found, err := h.opts.Sessions.Load(r.Context(), r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		h.writeError(w, r, StatusError{Code: http.StatusForbidden, Err: session.ErrNoSession})
		return
	}
	if !session.ValidToken(rec, token) {
		h.writeError(w, r, StatusError{Code: http.StatusForbidden, Err: session.ErrInvalidToken})
		return
	}

	errs := sanitize.ValidateRegistration(input)
	clean := input.Sanitized()
	state := session.State{EventName: clean.EventName, FullName: clean.FullName}
	if len(errs) > 0 || !input.Submittable() || !state.Present() {
		formErrors := []string{MessageInvalid}
		if len(errs) == 0 {
			formErrors = []string{MessageRequired}
		}
		h.renderRegistration(w, r, http.StatusUnprocessableEntity, rec.CSRFToken, input, render.FieldErrorsFrom(errs), formErrors)
		return
	}

	if err := h.opts.Sessions.Commit(r.Context(), r, token, state); err != nil {
		if errors.Is(err, session.ErrInvalidToken) || errors.Is(err, session.ErrNoSession) {
			err = StatusError{Code: http.StatusForbidden, Err: err}
		}
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, h.promptURL(1), http.StatusSeeOther)
}

func (h *handler) renderRegistration(w http.ResponseWriter, r *http.Request, status int, token string, input sanitize.Registration, fieldErrors map[string][]string, formErrors []string) {
	screen := render.RegistrationScreen{
		Title:  h.opts.Templates.EventTitle,
		Slug:   h.opts.Templates.Slug(),
		Action: h.rootURL(),
		Input:  input,
	}
	options := render.RenderOptions{
		Values:     render.ValuesFrom(input),
		Errors:     fieldErrors,
		FormErrors: formErrors,
		Hidden:     render.MergeHiddenFields(nil, render.CSRFToken(token)),
		Theme:      h.theme,
	}
	h.renderScreen(w, r, h.opts.PageRenderer, status, screen, options)
}

// promptScreen guards the prompt routes. It answers with a redirect to the
// registration form and returns false when the session holds no values.
func (h *handler) promptScreen(w http.ResponseWriter, r *http.Request) (render.PromptScreen, bool) {
	state, ok, err := h.opts.Sessions.State(r.Context(), r)
	if err != nil {
		h.writeError(w, r, err)
		return render.PromptScreen{}, false
	}
	if !ok {
		http.Redirect(w, r, h.rootURL(), http.StatusSeeOther)
		return render.PromptScreen{}, false
	}

	// Only the template lookup falls back; labels and links follow the
	// requested position.
	idx := prompts.ParseIndex(r.PathValue("id"))
	rendered := prompts.Render(h.opts.Templates, idx, state)
	return render.PromptScreen{
		Title:           h.opts.Templates.EventTitle,
		Slug:            h.opts.Templates.Slug(),
		Prompt:          rendered,
		Navigation:      prompts.Navigate(idx, rendered.Total),
		State:           state,
		RawURL:          h.promptURL(idx) + "/raw",
		RegistrationURL: h.rootURL(),
		PromptURL:       h.promptURL,
	}, true
}

func (h *handler) showPrompt(w http.ResponseWriter, r *http.Request) {
	screen, ok := h.promptScreen(w, r)
	if !ok {
		return
	}
	h.renderScreen(w, r, h.opts.PageRenderer, http.StatusOK, screen, render.RenderOptions{Theme: h.theme})
}

func (h *handler) rawPrompt(w http.ResponseWriter, r *http.Request) {
	screen, ok := h.promptScreen(w, r)
	if !ok {
		return
	}
	h.renderScreen(w, r, h.opts.RawRenderer, http.StatusOK, screen, render.RenderOptions{})
}

func (h *handler) renderScreen(w http.ResponseWriter, r *http.Request, name string, status int, screen render.Screen, options render.RenderOptions) {
	renderer, err := h.opts.Renderers.Get(name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	body, err := renderer.Render(r.Context(), screen, options)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func (h *handler) validateValue(w http.ResponseWriter, r *http.Request) {
	res := sanitize.Validate(r.URL.Query().Get("value"))
	writeJSON(w, r, http.StatusOK, validateResponse{Valid: res.Valid, Message: res.Message})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *handler) apiDescription() http.Handler {
	return apispec.Handler()
}

func (h *handler) assets() http.Handler {
	return http.FileServerFS(h.opts.Assets)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	status := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode()
	}
	if status >= http.StatusInternalServerError && h.opts.OnError != nil {
		h.opts.OnError(r, err)
	}
	http.Error(w, http.StatusText(status), status)
}
