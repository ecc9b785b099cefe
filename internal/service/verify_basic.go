package service

import (
	"context"
	"time"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
)

// StaticCredential is one entry of the basic scheme's credential table.
type StaticCredential struct {
	Username string
	Password string
	Role     string
}

// BasicVerifier verifies Basic credentials against a static table by exact
// literal match. It deliberately does not consult the user store: the basic
// scheme authenticates against its configured table only, and the produced
// identity carries no expiry.
type BasicVerifier struct {
	table []StaticCredential
	now   func() time.Time
}

// NewBasicVerifier constructs a BasicVerifier over the given table.
func NewBasicVerifier(table []StaticCredential) *BasicVerifier {
	return &BasicVerifier{table: table, now: time.Now}
}

// Verify implements ports.Verifier.
func (v *BasicVerifier) Verify(_ context.Context, cred domainauth.Credential) (domainauth.Identity, error) {
	switch cred.Kind {
	case domainauth.CredentialBasic:
	case domainauth.CredentialMalformed:
		return domainauth.Identity{}, domainauth.ErrMalformedCredential
	default:
		return domainauth.Identity{}, domainauth.ErrSchemeMismatch
	}

	for _, entry := range v.table {
		if entry.Username == cred.Username && entry.Password == cred.Password {
			return domainauth.Identity{
				Username: entry.Username,
				Roles:    []string{entry.Role},
				IssuedAt: v.now(),
			}, nil
		}
	}
	return domainauth.Identity{}, domainauth.ErrInvalidCredentials
}
