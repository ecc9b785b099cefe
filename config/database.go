package config

// DBConfig contains PostgreSQL database configuration for the user store.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"gatekeep"`
	Password string `env:"PASSWORD" envDefault:"gatekeep"`
	Name     string `env:"NAME"     envDefault:"gatekeep"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// RunMigrationsOnStart controls whether the application applies the
	// users schema and seed data during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration for the session store. When URI is
// empty the application falls back to an in-memory session store (dev only).
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
