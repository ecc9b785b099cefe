package memory

import (
	"context"
	"sync"

	"github.com/target/gatekeep/internal/data"
	"github.com/target/gatekeep/internal/domain/model"
)

// UserStore is an in-process user store for development runs without a
// database. It implements ports.UserStore.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewUserStore creates a user store holding the given records.
func NewUserStore(users []model.User) *UserStore {
	s := &UserStore{users: make(map[string]model.User, len(users))}
	for i, u := range users {
		if u.ID == 0 {
			u.ID = int64(i + 1)
		}
		s.users[u.Username] = u
	}
	return s
}

// FindByUsername returns the user with the exact given username.
func (s *UserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return model.User{}, data.ErrUserNotFound
	}
	return u, nil
}
