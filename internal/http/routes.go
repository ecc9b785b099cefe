package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
	"github.com/target/gatekeep/internal/service"
)

// adminRole is the role required by the role-gated routes.
const adminRole = "Admin"

// RouterServices holds the verifiers, issuers, and settings needed by the
// HTTP router. A nil verifier disables its scheme's routes.
type RouterServices struct {
	BasicVerifier   ports.Verifier
	SessionVerifier ports.Verifier
	TokenVerifier   ports.Verifier

	LoginService  *service.LoginService
	SessionIssuer *service.SessionIssuer
	TokenIssuer   *service.TokenIssuer

	SessionCookieName string
	CookieDomain      string
	Logger            *slog.Logger
}

// NewRouter creates and configures the HTTP router. Each route is wired to
// exactly one verifier/policy pair at registration time.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", HandleHealth)

	if services.BasicVerifier != nil {
		registerBasicRoutes(mux, services)
	}
	if services.SessionVerifier != nil {
		registerSessionRoutes(mux, services)
	}
	if services.TokenVerifier != nil {
		registerTokenRoutes(mux, services)
	}

	return mux
}

// registerBasicRoutes wires the static-credential scheme: credentials travel
// on every request, so there is no login endpoint.
func registerBasicRoutes(mux *http.ServeMux, services RouterServices) {
	authn := Authenticate(services.BasicVerifier, "")
	authed := Require(domainauth.RequireAuthenticated())

	mux.Handle("GET /api/securedata", authn(authed(http.HandlerFunc(HandleSecureData))))
}

// registerSessionRoutes wires the session-cookie scheme.
func registerSessionRoutes(mux *http.ServeMux, services RouterServices) {
	handlers := &SessionAuthHandlers{
		Login:        services.LoginService,
		Issuer:       services.SessionIssuer,
		CookieName:   services.SessionCookieName,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}

	authn := Authenticate(services.SessionVerifier, services.SessionCookieName)
	optional := OptionalAuthenticate(services.SessionVerifier, services.SessionCookieName)
	authed := Require(domainauth.RequireAuthenticated())

	mux.HandleFunc("GET /api/auth/login", handlers.HandleLogin)
	mux.HandleFunc("GET /api/auth/logout", handlers.HandleLogout)
	mux.Handle("GET /api/auth/status", optional(http.HandlerFunc(handlers.HandleStatus)))
	mux.Handle("GET /api/auth/secure", authn(authed(http.HandlerFunc(HandleSessionSecure))))
}

// registerTokenRoutes wires the bearer-token scheme and the role-gated routes
// layered on it.
func registerTokenRoutes(mux *http.ServeMux, services RouterServices) {
	handlers := &TokenAuthHandlers{
		Login:  services.LoginService,
		Issuer: services.TokenIssuer,
		Logger: services.Logger,
	}

	authn := Authenticate(services.TokenVerifier, "")
	authed := Require(domainauth.RequireAuthenticated())
	adminOnly := Require(domainauth.RequireRole(adminRole))

	mux.HandleFunc("POST /api/token/login", handlers.HandleLogin)
	mux.Handle("GET /api/token/secure", authn(authed(http.HandlerFunc(HandleTokenSecure))))
	mux.Handle("GET /api/token/profile", authn(authed(http.HandlerFunc(HandleProfile))))
	mux.Handle("DELETE /api/token/delete-database", authn(adminOnly(http.HandlerFunc(HandleDeleteDatabase))))
}
