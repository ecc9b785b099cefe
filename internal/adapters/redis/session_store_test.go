package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
	"github.com/target/gatekeep/internal/testutil"
)

func newTestSession() domainauth.Session {
	now := time.Now().Truncate(time.Second)
	return domainauth.Session{
		ID:        uuid.NewString(),
		Username:  "bob",
		Roles:     []string{"User"},
		IssuedAt:  now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test:session:")
	ctx := context.Background()

	sess := newTestSession()
	require.NoError(t, store.Save(ctx, sess))
	t.Cleanup(func() { _ = store.Delete(ctx, sess.ID) })

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Username, got.Username)
	assert.Equal(t, sess.Roles, got.Roles)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)

	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
}

func TestSessionStore_SaveNeverOverwrites(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test:session:")
	ctx := context.Background()

	sess := newTestSession()
	require.NoError(t, store.Save(ctx, sess))
	t.Cleanup(func() { _ = store.Delete(ctx, sess.ID) })

	dup := sess
	dup.Username = "mallory"
	assert.ErrorIs(t, store.Save(ctx, dup), ports.ErrDuplicateSessionID)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestSessionStore_SaveRejectsExpiredRecord(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test:session:")

	sess := newTestSession()
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Save(context.Background(), sess))
}

func TestSessionStore_GetUnknownID(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test:session:")

	_, err := store.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
}

func TestSessionStore_RecordTTLTracksExpiry(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test:session:")
	ctx := context.Background()

	sess := newTestSession()
	require.NoError(t, store.Save(ctx, sess))
	t.Cleanup(func() { _ = store.Delete(ctx, sess.ID) })

	ttl, err := client.TTL(ctx, "test:session:"+sess.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 9*time.Minute)
	assert.LessOrEqual(t, ttl, 10*time.Minute)
}
