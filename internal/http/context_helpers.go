package httpx

import (
	"context"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
)

// identityKey is an unexported context key type to avoid collisions across
// packages. Centralized in this file so all handlers/middleware use the same
// key.
type identityKey struct{}

// SetIdentityInContext returns a child context carrying the verified identity.
//
// The identity slot is write-once per request: a second call on a context that
// already carries an identity panics, since re-verification mid-request is a
// programming error, not a user-facing condition.
func SetIdentityInContext(ctx context.Context, id *domainauth.Identity) context.Context {
	if id == nil {
		return ctx
	}
	if _, ok := IdentityFromContext(ctx); ok {
		panic("httpx: identity already set for this request")
	}
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the verified identity from the context and a
// boolean indicating presence.
func IdentityFromContext(ctx context.Context) (*domainauth.Identity, bool) {
	if id, ok := ctx.Value(identityKey{}).(*domainauth.Identity); ok && id != nil {
		return id, true
	}
	return nil, false
}
