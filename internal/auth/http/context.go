// Package http provides the session middleware and two-factor handlers.
package http

import (
	"context"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
)

// sessionKey is a context key type for storing verified sessions.
type sessionKey struct{}

// WithSession stores a verified session in the context. Called by the session
// middleware after a successful lookup.
func WithSession(ctx context.Context, session *authDomain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession retrieves the verified session from the context.
// Returns (session, true) when present, or (nil, false) when the request was
// not authenticated.
func GetSession(ctx context.Context) (*authDomain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*authDomain.Session)
	return session, ok
}
