package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate returns the per-route authentication stage of the pipeline:
// extract the credential, verify it with the route's verifier, and populate
// the identity context. Any failure short-circuits to a terminal 401.
//
// cookieName is the session cookie consulted by the extractor; pass "" for
// routes whose scheme never reads cookies.
func Authenticate(verifier ports.Verifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cred := extractFromRequest(r, cookieName)
			switch cred.Kind {
			case domainauth.CredentialAbsent:
				rejectWith(w, domainauth.ErrUnauthenticated)
				return
			case domainauth.CredentialMalformed:
				rejectWith(w, domainauth.ErrMalformedCredential)
				return
			}

			id, err := verifier.Verify(r.Context(), cred)
			if err != nil {
				rejectWith(w, err)
				return
			}

			ctx := SetIdentityInContext(r.Context(), &id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthenticate is like Authenticate but lets unauthenticated requests
// through without an identity instead of rejecting them. Used by the status
// endpoint.
func OptionalAuthenticate(verifier ports.Verifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cred := extractFromRequest(r, cookieName)
			if cred.Kind != domainauth.CredentialAbsent && cred.Kind != domainauth.CredentialMalformed {
				if id, err := verifier.Verify(r.Context(), cred); err == nil {
					r = r.WithContext(SetIdentityInContext(r.Context(), &id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Require returns the policy stage of the pipeline: evaluate the route's
// policy against the identity context and reject with 401 or 403 on deny.
func Require(policy domainauth.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := IdentityFromContext(r.Context())
			decision := domainauth.Decide(policy, id)
			if !decision.Allowed {
				rejectWith(w, decision.Reason)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractFromRequest adapts the transport request to the pure extractor.
func extractFromRequest(r *http.Request, cookieName string) domainauth.Credential {
	var cookieValue string
	var cookiePresent bool
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil {
			cookieValue = c.Value
			cookiePresent = true
		}
	}
	return domainauth.Extract(r.Header.Get("Authorization"), cookieValue, cookiePresent)
}

// rejectWith converts a pipeline failure into its terminal JSON response.
// 403 only for role-insufficiency with an authenticated identity; every other
// failure is a 401.
func rejectWith(w http.ResponseWriter, reason error) {
	code := http.StatusUnauthorized
	if errors.Is(reason, domainauth.ErrForbidden) {
		code = http.StatusForbidden
	}
	WriteError(w, ErrorParams{
		Code:    code,
		ErrCode: domainauth.ReasonCode(reason),
		Err:     reason,
	})
}
