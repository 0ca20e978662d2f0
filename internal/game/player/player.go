// Package player defines player identity and the registry contract that
// backs registration and login.
package player

import (
	"context"
	"errors"
	"time"
)

// Registry sentinel errors. The gateway maps these to response statuses.
var (
	// ErrAccountExists is returned when registering a duplicate account name.
	ErrAccountExists = errors.New("player: account already exists")
	// ErrNotFound is returned when no player matches the lookup key.
	ErrNotFound = errors.New("player: not found")
	// ErrInvalidCredentials is returned when a login password does not match.
	ErrInvalidCredentials = errors.New("player: invalid credentials")
	// ErrUnavailable is returned when the backing store cannot be reached.
	// Safe to retry; all other registry errors are terminal for the call.
	ErrUnavailable = errors.New("player: registry unavailable")
)

// Player is the durable identity and profile of an account. Mutated only
// through Registry operations, never deleted.
type Player struct {
	ID           string
	UserName     string
	Nickname     string
	Email        string
	PasswordHash string
	JoinDate     time.Time
	LastLogin    time.Time
	WinCount     int32
	LoseCount    int32
	Credits      int32
}

// Registry is the durable store of player identities.
type Registry interface {
	// Register creates a new player. The account name must be unique
	// (case-sensitive); a duplicate yields ErrAccountExists. Two concurrent
	// registrations for the same name must not both succeed.
	Register(ctx context.Context, userName, nickname, email, password string) (Player, error)

	// Login verifies credentials and updates the last-login timestamp
	// atomically with the read. Returns ErrNotFound for an unknown account
	// and ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, userName, password string) (Player, error)

	// GetByID looks up a player by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (Player, error)
}
