package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	"github.com/nexora/corpsite-api/internal/testutil"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-1",
		UserID:    "user-123",
		Email:     "user@example.com",
		Roles:     []domainauth.Role{domainauth.RoleHR, domainauth.RoleManager},
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Email, retrieved.Email)
	assert.Equal(t, session.Roles, retrieved.Roles)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_SaveExpired(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	err := store.Save(context.Background(), domainauth.Session{
		ID:        "already-expired",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestSessionStore_SaveEmptyID(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	err := store.Save(context.Background(), domainauth.Session{
		ExpiresAt: time.Now().Add(time.Minute),
	})
	assert.Error(t, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-delete",
		UserID:    "user-123",
		Roles:     []domainauth.Role{domainauth.RoleAdmin},
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	require.NoError(t, store.Save(ctx, session))

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err := store.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)

	// Deleting again is a no-op, as is deleting the empty id.
	assert.NoError(t, store.Delete(ctx, session.ID))
	assert.NoError(t, store.Delete(ctx, ""))
}
