package httpx

import (
	"context"

	domainauth "github.com/byeyali/airang-ssam-sub001/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session from context and a boolean indicating presence.
func SessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// RequesterFromContext derives the request principal from the context session.
func RequesterFromContext(ctx context.Context) (domainauth.Requester, bool) {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return domainauth.Requester{}, false
	}
	return session.Requester(), true
}
