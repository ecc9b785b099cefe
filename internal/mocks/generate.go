// Package mocks provides generated mock implementations for testing the auth
// pipeline.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockSessionStore(ctrl)
//	store.EXPECT().Get(gomock.Any(), "id").Return(sess, nil)
package mocks

// Generate mock for SessionStore from internal/ports: Save, Get, Delete.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/target/gatekeep/internal/ports SessionStore

// Generate mock for UserStore from internal/ports: FindByUsername.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_store_mock.go github.com/target/gatekeep/internal/ports UserStore
