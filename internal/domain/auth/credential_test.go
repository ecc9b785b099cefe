package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_BasicHeader(t *testing.T) {
	// base64("admin:123")
	cred := Extract("Basic YWRtaW46MTIz", "", false)

	assert.Equal(t, CredentialBasic, cred.Kind)
	assert.Equal(t, "admin", cred.Username)
	assert.Equal(t, "123", cred.Password)
}

func TestExtract_BasicPasswordWithColon(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("admin:pa:ss"))
	cred := Extract("Basic "+encoded, "", false)

	assert.Equal(t, CredentialBasic, cred.Kind)
	assert.Equal(t, "admin", cred.Username)
	assert.Equal(t, "pa:ss", cred.Password)
}

func TestExtract_BasicBadBase64(t *testing.T) {
	cred := Extract("Basic not-base64!!", "", false)
	assert.Equal(t, CredentialMalformed, cred.Kind)
}

func TestExtract_BasicMissingColon(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("adminonly"))
	cred := Extract("Basic "+encoded, "", false)
	assert.Equal(t, CredentialMalformed, cred.Kind)
}

func TestExtract_Bearer(t *testing.T) {
	cred := Extract("Bearer abc.def.ghi", "", false)

	assert.Equal(t, CredentialBearer, cred.Kind)
	assert.Equal(t, "abc.def.ghi", cred.Token)
}

func TestExtract_BearerEmpty(t *testing.T) {
	cred := Extract("Bearer ", "", false)
	assert.Equal(t, CredentialMalformed, cred.Kind)
}

func TestExtract_UnknownScheme(t *testing.T) {
	cred := Extract("Digest qop=auth", "", false)
	assert.Equal(t, CredentialMalformed, cred.Kind)
}

func TestExtract_SchemeCaseInsensitive(t *testing.T) {
	cred := Extract("basic YWRtaW46MTIz", "", false)
	assert.Equal(t, CredentialBasic, cred.Kind)
}

func TestExtract_SessionCookie(t *testing.T) {
	cred := Extract("", "sess-123", true)

	assert.Equal(t, CredentialSessionCookie, cred.Kind)
	assert.Equal(t, "sess-123", cred.Cookie)
}

func TestExtract_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	cred := Extract("Bearer tok", "sess-123", true)
	assert.Equal(t, CredentialBearer, cred.Kind)
}

func TestExtract_Absent(t *testing.T) {
	cred := Extract("", "", false)
	assert.Equal(t, CredentialAbsent, cred.Kind)
}
