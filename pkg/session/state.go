// Package session holds the per-browser-session values written at
// registration and read by every prompt render.
package session

import "errors"

// ErrNoSession is returned when a request carries no usable session.
var ErrNoSession = errors.New("session: no session")

// State is the session context passed to prompt rendering. Both values are
// sanitized slugs.
type State struct {
	EventName string `json:"eventName"`
	FullName  string `json:"fullName"`
}

// Present reports whether both values were written. An empty value counts as
// missing, so rendering is refused for it.
func (s State) Present() bool {
	return s.EventName != "" && s.FullName != ""
}

// Record is what a Store keeps per session id.
type Record struct {
	State     State  `json:"state"`
	CSRFToken string `json:"csrfToken,omitempty"`
}

// Guard returns the state held by rec and whether prompt rendering may
// proceed. Callers redirect to registration when ok is false.
func Guard(rec Record, found bool) (State, bool) {
	if !found || !rec.State.Present() {
		return State{}, false
	}
	return rec.State, true
}
