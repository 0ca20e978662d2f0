package postgres_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadshot465/demo-game/internal/game/player"
	"github.com/deadshot465/demo-game/internal/storage/postgres"
	"github.com/deadshot465/demo-game/internal/testutil"
)

func newTestRepository(t *testing.T) *postgres.PlayerRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewPlayerRepository(pc.RawPool, 1000)
}

func TestPlayerRepository_RegisterAndLogin(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Register(ctx, "alice", "Ace", "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int32(1000), created.Credits)
	assert.False(t, created.JoinDate.IsZero())

	got, err := repo.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.False(t, got.LastLogin.Before(created.LastLogin))
}

func TestPlayerRepository_DuplicateAccount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Register(ctx, "alice", "Ace", "a@example.com", "pw")
	require.NoError(t, err)

	_, err = repo.Register(ctx, "alice", "Other", "b@example.com", "pw2")
	assert.ErrorIs(t, err, player.ErrAccountExists)
}

func TestPlayerRepository_ConcurrentRegisterSameAccount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const workers = 8
	var successes atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Register(ctx, "alice", "Ace", "a@example.com", "pw"); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestPlayerRepository_LoginErrors(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Login(ctx, "nobody", "pw")
	assert.ErrorIs(t, err, player.ErrNotFound)

	_, err = repo.Register(ctx, "alice", "Ace", "a@example.com", "pw")
	require.NoError(t, err)

	_, err = repo.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, player.ErrInvalidCredentials)
}

func TestPlayerRepository_GetByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Register(ctx, "alice", "Ace", "a@example.com", "pw")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, player.ErrNotFound)
}

func TestPlayerRepository_RecordResult(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	winner, err := repo.Register(ctx, "alice", "Ace", "a@example.com", "pw")
	require.NoError(t, err)
	loser, err := repo.Register(ctx, "bob", "Bo", "b@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, repo.RecordResult(ctx, winner.ID, loser.ID))

	w, err := repo.GetByID(ctx, winner.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), w.WinCount)
	assert.Equal(t, int32(0), w.LoseCount)

	l, err := repo.GetByID(ctx, loser.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), l.LoseCount)

	err = repo.RecordResult(ctx, winner.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, player.ErrNotFound)
}
