package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	domainauth "github.com/target/gatekeep/internal/domain/auth"
)

// tokenClaims is the claim set carried inside issued tokens.
type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenVerifier verifies bearer tokens signed with the shared HMAC-SHA256
// secret. Verification is a pure computation; no shared mutable state.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenVerifier constructs a TokenVerifier for the given signing secret.
func NewTokenVerifier(secret []byte) *TokenVerifier {
	return &TokenVerifier{
		secret: secret,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify implements ports.Verifier.
//
// The signature is verified before claim validation, so a forged token never
// reports expiry detail it didn't legitimately carry.
func (v *TokenVerifier) Verify(_ context.Context, cred domainauth.Credential) (domainauth.Identity, error) {
	switch cred.Kind {
	case domainauth.CredentialBearer:
	case domainauth.CredentialMalformed:
		return domainauth.Identity{}, domainauth.ErrMalformedCredential
	default:
		return domainauth.Identity{}, domainauth.ErrSchemeMismatch
	}

	claims := &tokenClaims{}
	_, err := v.parser.ParseWithClaims(cred.Token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return domainauth.Identity{}, mapTokenError(err)
	}

	if claims.Subject == "" {
		return domainauth.Identity{}, domainauth.ErrMalformedCredential
	}

	id := domainauth.Identity{
		Username: claims.Subject,
		Roles:    claims.Roles,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

// mapTokenError collapses golang-jwt errors into the pipeline taxonomy.
// Signature failures win over everything else.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domainauth.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainauth.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainauth.ErrMalformedCredential
	default:
		return domainauth.ErrBadSignature
	}
}

// TokenIssuer builds signed tokens from verified identities after login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer constructs a TokenIssuer with the given secret and expiry
// window.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// Issue returns the encoded signed token for the identity, with an absolute
// expiry a fixed window from issuance.
func (i *TokenIssuer) Issue(id domainauth.Identity) (string, error) {
	now := i.now()
	claims := tokenClaims{
		Roles: id.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
