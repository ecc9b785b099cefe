package data_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/gatekeep/internal/data"
	"github.com/target/gatekeep/internal/domain/model"
	"github.com/target/gatekeep/internal/testutil"
)

func TestUserRepo_FindSeededUsers(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := data.NewUserRepo(pool)
	ctx := context.Background()

	admin, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "123", admin.Password)
	assert.Equal(t, "Admin", admin.Role)
	assert.NotZero(t, admin.ID)

	bob, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "User", bob.Role)
}

func TestUserRepo_FindUnknownUser(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := data.NewUserRepo(pool)

	_, err := repo.FindByUsername(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, data.ErrUserNotFound)
}

func TestUserRepo_Create(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := data.NewUserRepo(pool)
	ctx := context.Background()

	username := "user-" + uuid.NewString()
	created, err := repo.Create(ctx, model.User{
		Username: username,
		Password: "secret",
		Role:     "User",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DELETE FROM users WHERE username = $1", username)
	})

	found, err := repo.FindByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestUserRepo_CreateDuplicateUsername(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := data.NewUserRepo(pool)

	_, err := repo.Create(context.Background(), model.User{
		Username: "admin",
		Password: "other",
		Role:     "User",
	})
	assert.ErrorIs(t, err, data.ErrUsernameTaken)
}
