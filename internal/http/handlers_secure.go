package httpx

import (
	"fmt"
	"net/http"
)

// Protected endpoint handlers. By the time these run, the pipeline has
// verified an identity and the route's policy has allowed it; handlers only
// read the identity context.

// HandleSecureData serves the basic scheme's protected resource.
// GET /api/securedata.
func HandleSecureData(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "You have accessed the Secure Data!",
	})
}

// HandleSessionSecure serves the session scheme's protected resource.
// GET /api/auth/secure.
func HandleSessionSecure(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Hello %s, you are accessing secure data!", id.Username),
	})
}

// HandleTokenSecure serves the token scheme's protected resource.
// GET /api/token/secure.
func HandleTokenSecure(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Authenticated! User: %s", id.Username),
	})
}

// HandleProfile is reachable by any logged-in user, whatever their role.
// GET /api/token/profile.
func HandleProfile(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Hello %s, you are logged in.", id.Username),
		"roles":   id.Roles,
	})
}

// HandleDeleteDatabase is reachable only by the Admin role.
// DELETE /api/token/delete-database.
func HandleDeleteDatabase(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "DATABASE DELETED! (Not really, but you are authorized to do it)",
	})
}

// HandleHealth is the unauthenticated liveness endpoint.
// GET /healthz.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
