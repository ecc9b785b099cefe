package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/target/gatekeep/internal/data"
	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
)

// LoginService authenticates a username/password pair directly against the
// user store. This is the login path of the session and token schemes, not
// the per-request Verifier path: there is no prior Credential to re-verify.
type LoginService struct {
	users ports.UserStore
	now   func() time.Time
}

// NewLoginService constructs a LoginService over the given user store.
func NewLoginService(users ports.UserStore) *LoginService {
	return &LoginService{users: users, now: time.Now}
}

// Login looks up the user by exact username and compares the password by
// exact match. An absent user and a password mismatch are indistinguishable
// to the caller.
func (s *LoginService) Login(ctx context.Context, username, password string) (domainauth.Identity, error) {
	if username == "" || password == "" {
		return domainauth.Identity{}, domainauth.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return domainauth.Identity{}, domainauth.ErrInvalidCredentials
		}
		return domainauth.Identity{}, fmt.Errorf("find user: %w", err)
	}

	if user.Password != password {
		return domainauth.Identity{}, domainauth.ErrInvalidCredentials
	}

	return domainauth.Identity{
		Username: user.Username,
		Roles:    []string{user.Role},
		IssuedAt: s.now(),
	}, nil
}
