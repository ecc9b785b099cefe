package data

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/target/gatekeep/internal/domain/model"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role     TEXT NOT NULL
)`

// SeedRecords returns the demo user records the system ships with.
func SeedRecords() []model.User {
	return []model.User{
		{Username: "admin", Password: "123", Role: "Admin"},
		{Username: "bob", Password: "123", Role: "User"},
	}
}

// Migrate creates the users table and applies the seed records. Inserts are
// idempotent so Migrate can run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, usersSchema); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	for _, u := range SeedRecords() {
		_, err := pool.Exec(ctx, `
			INSERT INTO users (username, password, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (username) DO NOTHING
		`, u.Username, u.Password, u.Role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}
	return nil
}
