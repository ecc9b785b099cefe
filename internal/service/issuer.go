package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
)

// sessionIDAttempts bounds the retry loop on session ID collision. UUID
// collisions are not expected in practice; the bound keeps the insert path
// terminating under a misbehaving store.
const sessionIDAttempts = 3

// SessionIssuer creates server-side session records after a successful login.
type SessionIssuer struct {
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionIssuer constructs a SessionIssuer with the given store and expiry
// window.
func NewSessionIssuer(sessions ports.SessionStore, ttl time.Duration) *SessionIssuer {
	return &SessionIssuer{sessions: sessions, ttl: ttl, now: time.Now}
}

// Issue generates an unforgeable session identifier, fixes an absolute expiry
// a fixed window from issuance, and stores the record. The returned session's
// ID is the cookie value to set.
func (i *SessionIssuer) Issue(ctx context.Context, id domainauth.Identity) (domainauth.Session, error) {
	now := i.now()
	for attempt := 0; attempt < sessionIDAttempts; attempt++ {
		sess := domainauth.Session{
			ID:        uuid.NewString(),
			Username:  id.Username,
			Roles:     id.Roles,
			IssuedAt:  now,
			ExpiresAt: now.Add(i.ttl),
		}

		err := i.sessions.Save(ctx, sess)
		if err == nil {
			return sess, nil
		}
		if errors.Is(err, ports.ErrDuplicateSessionID) {
			continue
		}
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return domainauth.Session{}, errors.New("session id space exhausted")
}

// Revoke deletes a session record. Used by logout; deleting an unknown ID is
// not an error.
func (i *SessionIssuer) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := i.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
