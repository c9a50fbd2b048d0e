package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// DefaultCookieName names the session cookie when no override is given.
const DefaultCookieName = "promptgen_session"

// Option configures a Manager.
type Option func(*Manager)

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			m.cookieName = trimmed
		}
	}
}

// WithSecureCookie marks the cookie Secure (HTTPS only).
func WithSecureCookie(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithIDGenerator replaces the uuid based id and token generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// Manager binds Store records to browser sessions through a cookie. The cookie
// carries no expiry, so the browser forgets it when the session ends.
type Manager struct {
	store      Store
	cookieName string
	secure     bool
	newID      func() string
}

// NewManager constructs a Manager over store. A nil store falls back to a
// MemoryStore.
func NewManager(store Store, options ...Option) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	m := &Manager{
		store:      store,
		cookieName: DefaultCookieName,
		newID:      uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// CookieName returns the configured cookie name.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// ID returns the session id carried by r, or "".
func (m *Manager) ID(r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// Load returns the record for the session carried by r.
func (m *Manager) Load(ctx context.Context, r *http.Request) (Record, bool, error) {
	id := m.ID(r)
	if id == "" {
		return Record{}, false, nil
	}
	return m.store.Load(ctx, id)
}

// State returns the registered values for r and whether rendering may
// proceed.
func (m *Manager) State(ctx context.Context, r *http.Request) (State, bool, error) {
	rec, found, err := m.Load(ctx, r)
	if err != nil {
		return State{}, false, err
	}
	state, ok := Guard(rec, found)
	return state, ok, nil
}

// Ensure returns the record for r, creating the session (id, cookie and CSRF
// token) when it does not exist yet.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, Record, error) {
	id := m.ID(r)
	var (
		rec   Record
		found bool
		err   error
	)
	if id != "" {
		rec, found, err = m.store.Load(ctx, id)
		if err != nil {
			return "", Record{}, err
		}
	}
	if !found {
		// Unknown or stale ids are replaced so clients cannot pick their own.
		id = m.newID()
		m.setCookie(w, id)
	}
	if found && rec.CSRFToken != "" {
		return id, rec, nil
	}

	rec.CSRFToken = m.newID()
	if err := m.store.Save(ctx, id, rec); err != nil {
		return "", Record{}, fmt.Errorf("session: save: %w", err)
	}
	return id, rec, nil
}

// Commit writes state into the session carried by r after checking token
// against the session's CSRF token.
func (m *Manager) Commit(ctx context.Context, r *http.Request, token string, state State) error {
	id := m.ID(r)
	if id == "" {
		return ErrNoSession
	}
	rec, found, err := m.store.Load(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoSession
	}
	if !ValidToken(rec, token) {
		return ErrInvalidToken
	}

	rec.State = state
	if err := m.store.Save(ctx, id, rec); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// ErrInvalidToken is returned by Commit when the submitted CSRF token does not
// match the session.
var ErrInvalidToken = errors.New("session: invalid csrf token")

// ValidToken compares token with the record's CSRF token in constant time.
func ValidToken(rec Record, token string) bool {
	if rec.CSRFToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(rec.CSRFToken), []byte(token)) == 1
}

func (m *Manager) setCookie(w http.ResponseWriter, id string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
