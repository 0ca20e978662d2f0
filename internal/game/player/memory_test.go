package player

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry_RegisterAndLogin(t *testing.T) {
	reg := NewMemoryRegistry(1000)
	ctx := context.Background()

	created, err := reg.Register(ctx, "alice", "Ace", "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int32(1000), created.Credits)
	assert.Equal(t, int32(0), created.WinCount)
	assert.False(t, created.JoinDate.IsZero())

	got, err := reg.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.False(t, got.LastLogin.Before(created.LastLogin))
}

func TestMemoryRegistry_DuplicateAccount(t *testing.T) {
	reg := NewMemoryRegistry(1000)
	ctx := context.Background()

	_, err := reg.Register(ctx, "alice", "Ace", "a@example.com", "pw")
	require.NoError(t, err)

	_, err = reg.Register(ctx, "alice", "Other", "b@example.com", "pw2")
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestMemoryRegistry_LoginWrongPassword(t *testing.T) {
	reg := NewMemoryRegistry(1000)
	ctx := context.Background()

	_, err := reg.Register(ctx, "alice", "Ace", "a@example.com", "pw")
	require.NoError(t, err)

	_, err = reg.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMemoryRegistry_LoginUnknownAccount(t *testing.T) {
	reg := NewMemoryRegistry(1000)
	_, err := reg.Login(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRegistry_GetByID(t *testing.T) {
	reg := NewMemoryRegistry(1000)
	ctx := context.Background()

	created, err := reg.Register(ctx, "alice", "Ace", "a@example.com", "pw")
	require.NoError(t, err)

	got, err := reg.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)

	_, err = reg.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRegistry_ConcurrentRegisterSameAccount(t *testing.T) {
	reg := NewMemoryRegistry(1000)
	ctx := context.Background()

	const workers = 8
	var successes atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Register(ctx, "alice", "Ace", "a@example.com", "pw"); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}
