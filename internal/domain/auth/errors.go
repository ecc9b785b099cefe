package auth

import "errors"

// Failure taxonomy for the authentication pipeline. Every failure is handled
// at the point of detection and converted into a terminal rejection; none
// propagate to the transport layer unhandled.
var (
	// ErrMalformedCredential: evidence was present but unparseable.
	ErrMalformedCredential = errors.New("malformed credential")
	// ErrSchemeMismatch: evidence present but of the wrong type for the
	// route's verifier.
	ErrSchemeMismatch = errors.New("credential scheme mismatch")
	// ErrInvalidCredentials: username/password mismatch or unknown user.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionNotFound: no session record for the presented cookie value.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired: session record exists but its expiry has passed.
	ErrSessionExpired = errors.New("session expired")
	// ErrBadSignature: token signature does not verify under the configured
	// secret.
	ErrBadSignature = errors.New("bad token signature")
	// ErrTokenExpired: token signature verifies but the token has expired.
	ErrTokenExpired = errors.New("token expired")
	// ErrUnauthenticated: no identity where one is required.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden: identity present but its roles are insufficient.
	ErrForbidden = errors.New("insufficient permissions")
)

// ReasonCode returns the machine-stable reason string for a pipeline failure.
// Internal detail (which exact decode step failed, etc.) is deliberately not
// surfaced beyond these categories.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrMalformedCredential):
		return "malformed_credential"
	case errors.Is(err, ErrSchemeMismatch):
		return "scheme_mismatch"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, ErrSessionExpired):
		return "session_expired"
	case errors.Is(err, ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrForbidden):
		return "insufficient_permissions"
	case errors.Is(err, ErrUnauthenticated):
		return "authentication_required"
	default:
		return "authentication_failed"
	}
}
