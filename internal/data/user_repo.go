// Package data provides PostgreSQL-backed storage for user records.
package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/target/gatekeep/internal/domain/model"
)

var (
	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user with a duplicate
	// username.
	ErrUsernameTaken = errors.New("username already exists")
)

// UserRepo provides database operations for user records. It implements
// ports.UserStore.
type UserRepo struct {
	Pool *pgxpool.Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{Pool: pool}
}

// FindByUsername retrieves a user by exact username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, username, password, role
		FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		return model.User{}, fmt.Errorf("query user: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("collect user: %w", err)
	}
	return user, nil
}

// Create inserts a new user record.
func (r *UserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	rows, err := r.Pool.Query(ctx, `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, password, role
	`, user.Username, user.Password, user.Role)
	if err != nil {
		return model.User{}, r.mapWriteErr(err)
	}

	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return model.User{}, r.mapWriteErr(err)
	}
	return out, nil
}

func (r *UserRepo) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUsernameTaken
	}
	return fmt.Errorf("insert user: %w", err)
}
