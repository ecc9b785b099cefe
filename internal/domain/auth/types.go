package auth

// Package auth contains domain-level types for authentication and
// authorization. It is pure and free of framework/adapter concerns.

import "time"

// Identity is a verified principal, trusted for the remainder of one request.
// It is produced once per successful verification and never mutated.
type Identity struct {
	Username  string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time // zero value means no expiry (basic scheme)
}

// HasAnyRole reports whether the identity holds at least one of the given
// roles. Matching is case-sensitive exact string comparison.
func (id Identity) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range id.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Session is the server-side record referenced by an opaque cookie value.
// The ID is cryptographically random and only ever looked up, never parsed.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's absolute expiry has passed.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Identity derives the request identity from a session record. Roles reflect
// the access rights at login time; they are not re-queried from the user
// store.
func (s Session) Identity() Identity {
	return Identity{
		Username:  s.Username,
		Roles:     s.Roles,
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
