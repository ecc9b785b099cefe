package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
)

// SessionVerifier verifies session-cookie credentials against the session
// store. The lookup is read-only: expired sessions are reported, not reaped
// (the store's TTL owns cleanup).
type SessionVerifier struct {
	sessions ports.SessionStore
	now      func() time.Time
}

// NewSessionVerifier constructs a SessionVerifier over the given store.
func NewSessionVerifier(sessions ports.SessionStore) *SessionVerifier {
	return &SessionVerifier{sessions: sessions, now: time.Now}
}

// Verify implements ports.Verifier.
func (v *SessionVerifier) Verify(ctx context.Context, cred domainauth.Credential) (domainauth.Identity, error) {
	switch cred.Kind {
	case domainauth.CredentialSessionCookie:
	case domainauth.CredentialMalformed:
		return domainauth.Identity{}, domainauth.ErrMalformedCredential
	default:
		return domainauth.Identity{}, domainauth.ErrSchemeMismatch
	}

	sess, err := v.sessions.Get(ctx, cred.Cookie)
	if err != nil {
		if errors.Is(err, domainauth.ErrSessionNotFound) {
			return domainauth.Identity{}, domainauth.ErrSessionNotFound
		}
		return domainauth.Identity{}, fmt.Errorf("get session: %w", err)
	}

	if sess.Expired(v.now()) {
		return domainauth.Identity{}, domainauth.ErrSessionExpired
	}

	// Roles come from the session record, reflecting access rights at login
	// time.
	return sess.Identity(), nil
}
