package auth

// Package auth contains simple hand-written test doubles for auth and
// pending-count ports. These are lightweight and suitable for unit tests
// without codegen.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	"github.com/nexora/corpsite-api/internal/domain/model"
	"github.com/nexora/corpsite-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore       = (*MemorySessionStore)(nil)
	_ ports.CredentialSource   = (*StubCredentialSource)(nil)
	_ ports.PendingCountSource = (*StubCountSource)(nil)
	_ ports.CountSnapshotStore = (*MemorySnapshotStore)(nil)
)

// ErrNotFound is returned by mocks when an entity is not present.
var ErrNotFound error = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

func (notFoundError) NotFound() bool { return true }

// MemorySessionStore is an in-memory session store for unit tests. Set Err to
// make every call fail, simulating an unreachable backing store.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	// Err, when non-nil, is returned by every operation.
	Err error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return domainauth.Session{}, m.Err
	}
	sess, ok := m.sessions[id]
	if id == "" || !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StubCredentialSource returns canned results for Verify and Create.
type StubCredentialSource struct {
	VerifyFunc func(ctx context.Context, creds ports.Credentials) (domainauth.User, error)
	CreateFunc func(ctx context.Context, account ports.NewAccount) (domainauth.User, error)

	// DefaultUser is returned when the corresponding Func is nil.
	DefaultUser domainauth.User
}

// NewStubCredentialSource creates a stub that accepts everything as a
// single HR user.
func NewStubCredentialSource() *StubCredentialSource {
	return &StubCredentialSource{
		DefaultUser: domainauth.User{
			ID:    "stub-user-1",
			Name:  "Stub User",
			Email: "stub.user@example.com",
			Roles: []domainauth.Role{domainauth.RoleHR},
		},
	}
}

func (s *StubCredentialSource) Verify(ctx context.Context, creds ports.Credentials) (domainauth.User, error) {
	if s.VerifyFunc != nil {
		return s.VerifyFunc(ctx, creds)
	}
	return s.DefaultUser, nil
}

func (s *StubCredentialSource) Create(ctx context.Context, account ports.NewAccount) (domainauth.User, error) {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, account)
	}
	user := s.DefaultUser
	user.Name = account.Name
	user.Email = account.Email
	return user, nil
}

// StubCountSource is a PendingCountSource with a settable count, error, and
// optional per-call delay for racing the aggregator in tests.
type StubCountSource struct {
	mu  sync.Mutex
	cat model.CountCategory
	n   int
	err error

	// Delay, when positive, is slept before each PendingCount returns.
	Delay time.Duration

	calls int
}

// NewStubCountSource creates a source for the given category.
func NewStubCountSource(cat model.CountCategory, n int) *StubCountSource {
	return &StubCountSource{cat: cat, n: n}
}

func (s *StubCountSource) Category() model.CountCategory { return s.cat }

func (s *StubCountSource) PendingCount(ctx context.Context) (int, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.n, nil
}

// Set replaces the count the source reports.
func (s *StubCountSource) Set(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = n
	s.err = nil
}

// Fail makes every subsequent PendingCount return err.
func (s *StubCountSource) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Calls reports how many times PendingCount has completed.
func (s *StubCountSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// MemorySnapshotStore is an in-memory CountSnapshotStore.
type MemorySnapshotStore struct {
	mu   sync.Mutex
	snap *model.PendingCounts

	// Err, when non-nil, is returned by every operation.
	Err error
}

// NewMemorySnapshotStore creates an empty snapshot store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (m *MemorySnapshotStore) SaveSnapshot(_ context.Context, snap model.PendingCounts) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.snap = &snap
	return nil
}

func (m *MemorySnapshotStore) LoadSnapshot(_ context.Context) (model.PendingCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return model.PendingCounts{}, m.Err
	}
	if m.snap == nil {
		return model.EmptyPendingCounts(), nil
	}
	return *m.snap, nil
}

func (m *MemorySnapshotStore) ClearSnapshot(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.snap = nil
	return nil
}
