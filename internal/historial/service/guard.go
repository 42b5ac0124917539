package service

import (
	"github.com/benavides/historial/internal/historial/domain"
)

// Guard decides whether protected screens may be shown.
type Guard struct {
	Sessions *SessionStore
}

// Allow is true iff a session is present.
func (g *Guard) Allow(sess *domain.Session) bool {
	return sess != nil
}

// Check evaluates the guard against the current session.
func (g *Guard) Check() (domain.Session, bool) {
	sess, ok := g.Sessions.Current()
	if !ok || !g.Allow(&sess) {
		return domain.Session{}, false
	}
	return sess, true
}

// Authorize requires a session holding at least one of perms. With no perms
// only the session is required.
func Authorize(sess *domain.Session, perms ...domain.Permission) error {
	if sess == nil {
		return ErrNoSession
	}
	if len(perms) == 0 {
		return nil
	}
	for _, p := range perms {
		if sess.Has(p) {
			return nil
		}
	}
	return ErrForbidden
}
