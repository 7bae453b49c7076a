// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository and port interfaces. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test
// expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockStore := mocks.NewMockSessionStore(ctrl)
//	mockStore.EXPECT().Get(gomock.Any(), "sid").Return(sess, nil)
package mocks

// Generate mock for SessionStore interface from internal/ports.
// This creates MockSessionStore with Save, Get, Delete.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/nexora/corpsite-api/internal/ports SessionStore

// Generate mock for CredentialSource interface from internal/ports.
// This creates MockCredentialSource with Verify, Create.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=credential_source_mock.go github.com/nexora/corpsite-api/internal/ports CredentialSource

// Generate mock for PendingCountSource interface from internal/ports.
// This creates MockPendingCountSource with Category, PendingCount.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=count_source_mock.go github.com/nexora/corpsite-api/internal/ports PendingCountSource

// Generate mock for CountSnapshotStore interface from internal/ports.
// This creates MockCountSnapshotStore with SaveSnapshot, LoadSnapshot, ClearSnapshot.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=count_snapshot_store_mock.go github.com/nexora/corpsite-api/internal/ports CountSnapshotStore
