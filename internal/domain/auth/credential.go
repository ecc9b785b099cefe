package auth

import (
	"encoding/base64"
	"strings"
)

// CredentialKind tags the variant of a Credential.
type CredentialKind string

const (
	// CredentialBasic carries a username/password pair from a Basic header.
	CredentialBasic CredentialKind = "basic"
	// CredentialBearer carries a raw bearer token, not yet validated.
	CredentialBearer CredentialKind = "bearer"
	// CredentialSessionCookie carries a raw session cookie value.
	CredentialSessionCookie CredentialKind = "session_cookie"
	// CredentialAbsent means no recognized authentication evidence was found.
	CredentialAbsent CredentialKind = "absent"
	// CredentialMalformed means evidence was present but unparseable.
	CredentialMalformed CredentialKind = "malformed"
)

func (k CredentialKind) String() string { return string(k) }

// Credential is raw authentication evidence extracted from a request.
// It is immutable once extracted: created per request by Extract, consumed
// once by a Verifier, and discarded when the request completes.
type Credential struct {
	Kind     CredentialKind
	Username string // basic
	Password string // basic
	Token    string // bearer
	Cookie   string // session cookie value
}

// Extract parses inbound authentication evidence into a Credential. It is a
// pure function of its inputs.
//
// Precedence: Authorization header (Basic, then Bearer), then the session
// cookie. An Authorization header with an unrecognized scheme, an undecodable
// Basic payload, or an empty Bearer token yields the Malformed variant.
func Extract(authorization, cookie string, cookiePresent bool) Credential {
	if authorization != "" {
		return extractAuthorization(authorization)
	}
	if cookiePresent {
		return Credential{Kind: CredentialSessionCookie, Cookie: cookie}
	}
	return Credential{Kind: CredentialAbsent}
}

func extractAuthorization(header string) Credential {
	scheme, param, found := strings.Cut(header, " ")
	if !found {
		return Credential{Kind: CredentialMalformed}
	}
	param = strings.TrimSpace(param)

	switch {
	case strings.EqualFold(scheme, "Basic"):
		return extractBasic(param)
	case strings.EqualFold(scheme, "Bearer"):
		if param == "" {
			return Credential{Kind: CredentialMalformed}
		}
		return Credential{Kind: CredentialBearer, Token: param}
	default:
		return Credential{Kind: CredentialMalformed}
	}
}

func extractBasic(param string) Credential {
	decoded, err := base64.StdEncoding.DecodeString(param)
	if err != nil {
		return Credential{Kind: CredentialMalformed}
	}

	// Split on the first colon only; passwords may contain colons.
	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return Credential{Kind: CredentialMalformed}
	}

	return Credential{Kind: CredentialBasic, Username: username, Password: password}
}
