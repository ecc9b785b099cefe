// Package testutil provides helpers for integration tests against real
// Postgres and Redis instances. Tests are skipped when the corresponding
// environment variables are unset, so the unit suite runs anywhere.
package testutil

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/target/gatekeep/internal/data"
)

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupTestRedis creates a Redis client for testing. The test is skipped
// unless TEST_REDIS_ADDR is set.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping Redis integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to connect to test Redis at %s: %v", addr, err)
	}
	return client
}

// SetupTestDB creates a pgx pool against the test database and applies the
// schema. The test is skipped unless TEST_DB_HOST is set.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}

	hostPort := net.JoinHostPort(host, getEnvOrDefault("TEST_DB_PORT", "5432"))
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		getEnvOrDefault("TEST_DB_USER", "gatekeep"),
		getEnvOrDefault("TEST_DB_PASSWORD", "gatekeep"),
		hostPort,
		getEnvOrDefault("TEST_DB_NAME", "gatekeep"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to connect to test database (is Postgres running?): %v", err)
	}

	if err := data.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}
