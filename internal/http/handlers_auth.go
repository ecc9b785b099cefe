package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/service"
)

// SessionAuthHandlers provides the login/logout/status endpoints of the
// session scheme.
type SessionAuthHandlers struct {
	Login        *service.LoginService
	Issuer       *service.SessionIssuer
	CookieName   string
	CookieDomain string
	Logger       *slog.Logger
}

func (h *SessionAuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleLogin handles the session login endpoint.
// GET /api/auth/login?username=<u>&password=<p>.
//
// Login bypasses the extractor/verifier path: the credentials are checked
// directly against the user store and a fresh session is issued.
func (h *SessionAuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	password := r.URL.Query().Get("password")

	id, err := h.Login.Login(r.Context(), username, password)
	if err != nil {
		writeLoginFailure(w, err)
		return
	}

	sess, err := h.Issuer.Issue(r.Context(), id)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "issue session failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "session_issue_failed",
			Err:     errors.New("could not create session"),
		})
		return
	}

	h.setSessionCookie(w, r, sess)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged In"})
}

// HandleLogout handles the session logout endpoint.
// GET /api/auth/logout.
func (h *SessionAuthHandlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.CookieName); err == nil {
		if revokeErr := h.Issuer.Revoke(r.Context(), c.Value); revokeErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", revokeErr)
		}
	}
	h.clearSessionCookie(w, r)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged Out"})
}

// HandleStatus returns the current authentication status.
// GET /api/auth/status. Wired behind OptionalAuthenticate.
func (h *SessionAuthHandlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"username": id.Username,
			"roles":    id.Roles,
		},
		"expires_at": id.ExpiresAt,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *SessionAuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearSessionCookie clears the session cookie by setting it to expire
// immediately, mirroring the attributes used when setting it.
func (h *SessionAuthHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// TokenAuthHandlers provides the login endpoint of the token scheme.
type TokenAuthHandlers struct {
	Login  *service.LoginService
	Issuer *service.TokenIssuer
	Logger *slog.Logger
}

func (h *TokenAuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// loginRequest is the JSON body of the token login endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin handles the token login endpoint.
// POST /api/token/login with JSON body {"username": ..., "password": ...}.
// Returns {"token": "<encoded>"} on success.
func (h *TokenAuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.Login.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeLoginFailure(w, err)
		return
	}

	token, err := h.Issuer.Issue(id)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "issue token failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "token_issue_failed",
			Err:     errors.New("could not create token"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// writeLoginFailure maps a login error to its response. Credential failures
// are 401; anything else (store unavailable, etc.) is a 500 with a generic
// body.
func writeLoginFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, domainauth.ErrInvalidCredentials) {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: domainauth.ReasonCode(err),
			Err:     domainauth.ErrInvalidCredentials,
		})
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusInternalServerError,
		ErrCode: "login_failed",
		Err:     errors.New("login failed"),
	})
}
