package config

import (
	"fmt"
	"strings"
	"time"
)

// Scheme identifies one of the supported authentication schemes. Each scheme
// has its own verifier and route wiring; there is no cross-scheme
// negotiation.
type Scheme string

const (
	// SchemeBasic checks static credentials on every request.
	SchemeBasic Scheme = "basic"
	// SchemeSession uses a server-side session referenced by a cookie.
	SchemeSession Scheme = "session"
	// SchemeToken uses self-contained signed bearer tokens. The role-gated
	// routes are layered on this scheme.
	SchemeToken Scheme = "token"
)

// ParseSchemes parses a comma-separated scheme list into a set.
func ParseSchemes(s string) (map[Scheme]bool, error) {
	out := make(map[Scheme]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		switch Scheme(part) {
		case SchemeBasic, SchemeSession, SchemeToken:
			out[Scheme(part)] = true
		default:
			return nil, fmt.Errorf("unknown auth scheme: %q (valid options: basic, session, token)", part)
		}
	}
	return out, nil
}

// StaticUser is one entry of the static credential table used by the basic
// scheme. Encoded in env as "username:password:Role".
type StaticUser struct {
	Username string
	Password string
	Role     string
}

// UnmarshalText implements encoding.TextUnmarshaler for StaticUser.
func (u *StaticUser) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return fmt.Errorf("invalid static user %q (want username:password:Role)", string(text))
	}
	u.Username, u.Password, u.Role = parts[0], parts[1], parts[2]
	return nil
}

// SessionConfig controls the session scheme.
type SessionConfig struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"CookieSession"`

	// TTL is the fixed window from issuance to absolute session expiry.
	TTL time.Duration `env:"TTL" envDefault:"10m"`
}

// TokenConfig controls the token scheme.
type TokenConfig struct {
	// Secret is the shared HMAC-SHA256 signing secret. The default is only
	// suitable for local development.
	Secret string `env:"SECRET" envDefault:"MySuperSecretKeyThatIsLongEnoughToSatisfyHMACSHA256!"`

	// TTL is the fixed window from issuance to absolute token expiry.
	TTL time.Duration `env:"TTL" envDefault:"1h"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Schemes is the comma-separated list of enabled schemes.
	Schemes string `env:"AUTH_SCHEMES" envDefault:"basic,session,token"`

	// StaticUsers is the credential table for the basic scheme. The basic
	// verifier checks this table only; it never consults the user store.
	StaticUsers []StaticUser `env:"AUTH_STATIC_USERS" envDefault:"admin:123:Admin" envSeparator:";"`

	Session SessionConfig `envPrefix:"SESSION_"`
	Token   TokenConfig   `envPrefix:"TOKEN_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.Session.CookieName == "" {
		a.Session.CookieName = "CookieSession"
	}
	if a.Session.TTL <= 0 {
		a.Session.TTL = 10 * time.Minute
	}
	if a.Token.TTL <= 0 {
		a.Token.TTL = time.Hour
	}
}
