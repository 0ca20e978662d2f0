package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/deadshot465/demo-game/internal/game/player"
)

// PlayerRepository provides player persistence operations.
type PlayerRepository struct {
	db              *pgxpool.Pool
	startingCredits int32
}

// NewPlayerRepository creates a PlayerRepository backed by the given pool.
// New accounts are granted startingCredits.
//
// Precondition: db must be a valid, open connection pool.
func NewPlayerRepository(db *pgxpool.Pool, startingCredits int32) *PlayerRepository {
	return &PlayerRepository{db: db, startingCredits: startingCredits}
}

var _ player.Registry = (*PlayerRepository)(nil)

const playerColumns = `id, user_name, nickname, email, password_hash,
	join_date, last_login, win_count, lose_count, credits`

// Register inserts a new player with a bcrypt-hashed password. The unique
// index on user_name makes concurrent duplicate registrations lose cleanly.
//
// Precondition: userName and password must be non-empty.
// Postcondition: Returns the created player, or player.ErrAccountExists if
// the account name is taken.
func (r *PlayerRepository) Register(ctx context.Context, userName, nickname, email, password string) (player.Player, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return player.Player{}, fmt.Errorf("hashing password: %w", err)
	}

	var p player.Player
	err = r.db.QueryRow(ctx,
		`INSERT INTO players (id, user_name, nickname, email, password_hash, credits)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+playerColumns,
		uuid.NewString(), userName, nickname, email, hash, r.startingCredits,
	).Scan(
		&p.ID, &p.UserName, &p.Nickname, &p.Email, &p.PasswordHash,
		&p.JoinDate, &p.LastLogin, &p.WinCount, &p.LoseCount, &p.Credits,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return player.Player{}, player.ErrAccountExists
		}
		return player.Player{}, storeErr("inserting player", err)
	}

	return p, nil
}

// Login verifies credentials and bumps last_login in the same statement, so
// concurrent logins for one account cannot lose the timestamp update.
//
// Postcondition: Returns the player with the refreshed last_login,
// player.ErrNotFound for an unknown account, or
// player.ErrInvalidCredentials for a wrong password.
func (r *PlayerRepository) Login(ctx context.Context, userName, password string) (player.Player, error) {
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT password_hash FROM players WHERE user_name = $1`,
		userName,
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return player.Player{}, player.ErrNotFound
		}
		return player.Player{}, storeErr("querying player", err)
	}

	if !CheckPassword(password, hash) {
		return player.Player{}, player.ErrInvalidCredentials
	}

	var p player.Player
	err = r.db.QueryRow(ctx,
		`UPDATE players SET last_login = now()
		 WHERE user_name = $1
		 RETURNING `+playerColumns,
		userName,
	).Scan(
		&p.ID, &p.UserName, &p.Nickname, &p.Email, &p.PasswordHash,
		&p.JoinDate, &p.LastLogin, &p.WinCount, &p.LoseCount, &p.Credits,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return player.Player{}, player.ErrNotFound
		}
		return player.Player{}, storeErr("updating last login", err)
	}

	return p, nil
}

// GetByID retrieves a player by id.
//
// Postcondition: Returns the player or player.ErrNotFound.
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, error) {
	var p player.Player
	err := r.db.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1`,
		id,
	).Scan(
		&p.ID, &p.UserName, &p.Nickname, &p.Email, &p.PasswordHash,
		&p.JoinDate, &p.LastLogin, &p.WinCount, &p.LoseCount, &p.Credits,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return player.Player{}, player.ErrNotFound
		}
		return player.Player{}, storeErr("querying player", err)
	}
	return p, nil
}

// RecordResult increments the winner's and loser's counters.
//
// Postcondition: Both counters are updated, or player.ErrNotFound if either
// id is unknown.
func (r *PlayerRepository) RecordResult(ctx context.Context, winnerID, loserID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storeErr("beginning transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE players SET win_count = win_count + 1 WHERE id = $1`, winnerID)
	if err != nil {
		return storeErr("recording win", err)
	}
	if tag.RowsAffected() == 0 {
		return player.ErrNotFound
	}

	tag, err = tx.Exec(ctx,
		`UPDATE players SET lose_count = lose_count + 1 WHERE id = $1`, loserID)
	if err != nil {
		return storeErr("recording loss", err)
	}
	if tag.RowsAffected() == 0 {
		return player.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("committing result", err)
	}
	return nil
}

// HashPassword creates a bcrypt hash of the given password.
//
// Precondition: password must be non-empty.
// Postcondition: Returns a bcrypt hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
//
// Postcondition: Returns true if password matches the hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// storeErr tags an infrastructure failure as retryable.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, player.ErrUnavailable, err)
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	// pgx wraps PostgreSQL errors; check for SQLSTATE 23505 (unique_violation)
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
