package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/ports"
)

func testSession(id string) domainauth.Session {
	now := time.Now()
	return domainauth.Session{
		ID:        id,
		Username:  "bob",
		Roles:     []string{"User"},
		IssuedAt:  now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	sess := testSession("sess-1")

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, domainauth.ErrSessionNotFound)
}

func TestSessionStore_SaveNeverOverwrites(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	first := testSession("sess-1")
	require.NoError(t, store.Save(ctx, first))

	second := testSession("sess-1")
	second.Username = "mallory"
	assert.ErrorIs(t, store.Save(ctx, second), ports.ErrDuplicateSessionID)

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestSessionStore_GetReturnsExpiredRecords(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testSession("stale")
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "stale")
	require.NoError(t, err)
	assert.True(t, got.Expired(time.Now()))
}

func TestSessionStore_DeleteUnknownIDIsNoOp(t *testing.T) {
	store := NewSessionStore()
	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}

func TestSessionStore_ConcurrentSaves(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sess := testSession(fmt.Sprintf("sess-%d", n))
			assert.NoError(t, store.Save(ctx, sess))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, err := store.Get(ctx, fmt.Sprintf("sess-%d", i))
		assert.NoError(t, err)
	}
}
