package player

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryRegistry is an in-process Registry with the same semantics as the
// PostgreSQL repository. It backs the gateway tests.
type MemoryRegistry struct {
	startingCredits int32

	mu     sync.Mutex
	byName map[string]*Player
	byID   map[string]*Player
}

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry(startingCredits int32) *MemoryRegistry {
	return &MemoryRegistry{
		startingCredits: startingCredits,
		byName:          make(map[string]*Player),
		byID:            make(map[string]*Player),
	}
}

var _ Registry = (*MemoryRegistry)(nil)

// Register creates a new player or returns ErrAccountExists.
func (m *MemoryRegistry) Register(_ context.Context, userName, nickname, email, password string) (Player, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Player{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byName[userName]; ok {
		return Player{}, ErrAccountExists
	}

	now := time.Now().UTC()
	p := &Player{
		ID:           uuid.NewString(),
		UserName:     userName,
		Nickname:     nickname,
		Email:        email,
		PasswordHash: string(hash),
		JoinDate:     now,
		LastLogin:    now,
		Credits:      m.startingCredits,
	}
	m.byName[userName] = p
	m.byID[p.ID] = p
	return *p, nil
}

// Login verifies credentials and bumps the last-login timestamp.
func (m *MemoryRegistry) Login(_ context.Context, userName, password string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byName[userName]
	if !ok {
		return Player{}, ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return Player{}, ErrInvalidCredentials
	}
	p.LastLogin = time.Now().UTC()
	return *p, nil
}

// GetByID looks up a player by id.
func (m *MemoryRegistry) GetByID(_ context.Context, id string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return Player{}, ErrNotFound
	}
	return *p, nil
}
