package bootstrap

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/target/gatekeep/config"
	"github.com/target/gatekeep/internal/adapters/memory"
	redisadapter "github.com/target/gatekeep/internal/adapters/redis"
	"github.com/target/gatekeep/internal/data"
	httpx "github.com/target/gatekeep/internal/http"
	"github.com/target/gatekeep/internal/ports"
	"github.com/target/gatekeep/internal/service"
)

// AuthDeps carries the infrastructure the auth stack is built on. Either
// client may be nil; in dev mode the stack degrades to in-memory stores.
type AuthDeps struct {
	Config      *config.AppConfig
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Logger      *slog.Logger
}

// BuildAuthStack constructs the stores, verifiers, and issuers for every
// enabled scheme and returns the router wiring.
func BuildAuthStack(deps AuthDeps) httpx.RouterServices {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	services := httpx.RouterServices{
		SessionCookieName: cfg.Auth.Session.CookieName,
		CookieDomain:      cfg.HTTP.CookieDomain,
		Logger:            logger,
	}

	if cfg.IsSchemeEnabled(config.SchemeBasic) {
		services.BasicVerifier = service.NewBasicVerifier(staticTable(cfg.Auth.StaticUsers))
	}

	needsLogin := cfg.IsSchemeEnabled(config.SchemeSession) || cfg.IsSchemeEnabled(config.SchemeToken)
	if needsLogin {
		services.LoginService = service.NewLoginService(buildUserStore(deps, logger))
	}

	if cfg.IsSchemeEnabled(config.SchemeSession) {
		sessionStore := buildSessionStore(deps, logger)
		services.SessionVerifier = service.NewSessionVerifier(sessionStore)
		services.SessionIssuer = service.NewSessionIssuer(sessionStore, cfg.Auth.Session.TTL)
	}

	if cfg.IsSchemeEnabled(config.SchemeToken) {
		secret := []byte(cfg.Auth.Token.Secret)
		services.TokenVerifier = service.NewTokenVerifier(secret)
		services.TokenIssuer = service.NewTokenIssuer(secret, cfg.Auth.Token.TTL)
	}

	return services
}

func staticTable(users []config.StaticUser) []service.StaticCredential {
	table := make([]service.StaticCredential, 0, len(users))
	for _, u := range users {
		table = append(table, service.StaticCredential{
			Username: u.Username,
			Password: u.Password,
			Role:     u.Role,
		})
	}
	return table
}

func buildUserStore(deps AuthDeps, logger *slog.Logger) ports.UserStore {
	if deps.DB != nil {
		return data.NewUserRepo(deps.DB)
	}
	logger.Warn("database not configured, using in-memory user store with seed records")
	return memory.NewUserStore(data.SeedRecords())
}

func buildSessionStore(deps AuthDeps, logger *slog.Logger) ports.SessionStore {
	if deps.RedisClient != nil {
		return redisadapter.NewSessionStore(deps.RedisClient)
	}
	logger.Warn("redis not configured, using in-memory session store")
	return memory.NewSessionStore()
}
