package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/gatekeep/internal/domain/auth"
	"github.com/target/gatekeep/internal/mocks"
	"github.com/target/gatekeep/internal/ports"
	"go.uber.org/mock/gomock"
)

func TestSessionIssuer_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSessionStore(ctrl)

	var saved domainauth.Session
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sess domainauth.Session) error {
			saved = sess
			return nil
		})

	issuer := NewSessionIssuer(store, 10*time.Minute)
	sess, err := issuer.Issue(context.Background(), domainauth.Identity{
		Username: "bob",
		Roles:    []string{"User"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, saved, sess)
	assert.Equal(t, "bob", sess.Username)
	assert.Equal(t, []string{"User"}, sess.Roles)
	assert.Equal(t, 10*time.Minute, sess.ExpiresAt.Sub(sess.IssuedAt))
}

func TestSessionIssuer_RetriesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSessionStore(ctrl)

	first := store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(ports.ErrDuplicateSessionID)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).After(first)

	issuer := NewSessionIssuer(store, 10*time.Minute)
	sess, err := issuer.Issue(context.Background(), domainauth.Identity{Username: "bob"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
}

func TestSessionIssuer_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSessionStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(ports.ErrDuplicateSessionID).Times(sessionIDAttempts)

	issuer := NewSessionIssuer(store, 10*time.Minute)
	_, err := issuer.Issue(context.Background(), domainauth.Identity{Username: "bob"})
	assert.Error(t, err)
}

func TestSessionIssuer_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSessionStore(ctrl)
	store.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

	issuer := NewSessionIssuer(store, 10*time.Minute)
	assert.NoError(t, issuer.Revoke(context.Background(), "sess-1"))
}

func TestSessionIssuer_RevokeEmptyIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSessionStore(ctrl)
	// No Delete call expected.

	issuer := NewSessionIssuer(store, 10*time.Minute)
	assert.NoError(t, issuer.Revoke(context.Background(), ""))
}
