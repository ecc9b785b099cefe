// Package ports defines interfaces (hexagonal ports) for auth-related
// behavior. Implementations live in internal/adapters and internal/data;
// orchestration in internal/service.
package ports

import (
	"context"
	"errors"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/domain/model"
)

// ErrDuplicateSessionID is returned by SessionStore.Save when a record with
// the same ID already exists.
var ErrDuplicateSessionID = errors.New("duplicate session id")

// UserStore looks up stored user records. Read-only to the pipeline.
type UserStore interface {
	// FindByUsername returns the user with the exact given username, or
	// data.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

// SessionStore persists and retrieves server-side sessions.
//
// Save is insert-if-absent: it must fail rather than overwrite an existing
// record, so concurrent issuance can never silently collide on an ID.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// Verifier turns an extracted credential into a verified identity. One
// implementation exists per scheme; routes are wired to exactly one verifier
// at configuration time, never selected by content-sniffing.
//
// A verifier presented with the wrong credential variant fails with
// auth.ErrSchemeMismatch.
type Verifier interface {
	Verify(ctx context.Context, cred domainauth.Credential) (domainauth.Identity, error)
}
