package bootstrap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/gatekeep/config"
)

func testConfig(schemes string) *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.Auth.Schemes = schemes
	cfg.Auth.StaticUsers = []config.StaticUser{{Username: "admin", Password: "123", Role: "Admin"}}
	cfg.Auth.Session.CookieName = "CookieSession"
	cfg.Auth.Session.TTL = 10 * time.Minute
	cfg.Auth.Token.Secret = "MySuperSecretKeyThatIsLongEnoughToSatisfyHMACSHA256!"
	cfg.Auth.Token.TTL = time.Hour
	return cfg
}

func testDeps(schemes string) AuthDeps {
	return AuthDeps{
		Config: testConfig(schemes),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBuildAuthStack_AllSchemes(t *testing.T) {
	services := BuildAuthStack(testDeps("basic,session,token"))

	assert.NotNil(t, services.BasicVerifier)
	assert.NotNil(t, services.SessionVerifier)
	assert.NotNil(t, services.TokenVerifier)
	assert.NotNil(t, services.LoginService)
	assert.NotNil(t, services.SessionIssuer)
	assert.NotNil(t, services.TokenIssuer)
	assert.Equal(t, "CookieSession", services.SessionCookieName)
}

func TestBuildAuthStack_BasicOnly(t *testing.T) {
	services := BuildAuthStack(testDeps("basic"))

	assert.NotNil(t, services.BasicVerifier)
	assert.Nil(t, services.SessionVerifier)
	assert.Nil(t, services.TokenVerifier)
	// Basic never consults the user store, so no login service is built.
	assert.Nil(t, services.LoginService)
}

func TestBuildAuthStack_TokenOnly(t *testing.T) {
	services := BuildAuthStack(testDeps("token"))

	assert.Nil(t, services.BasicVerifier)
	assert.Nil(t, services.SessionVerifier)
	require.NotNil(t, services.TokenVerifier)
	assert.NotNil(t, services.TokenIssuer)
	assert.NotNil(t, services.LoginService)
}

func TestBuildAuthStack_MemoryFallbacksWithoutInfra(t *testing.T) {
	// Nil DB and nil Redis: the stack still builds, backed by in-memory
	// stores seeded with the demo records.
	services := BuildAuthStack(testDeps("session,token"))

	require.NotNil(t, services.SessionVerifier)
	require.NotNil(t, services.LoginService)
	assert.NotNil(t, services.SessionIssuer)
}
