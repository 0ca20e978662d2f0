// Package room implements game room lifecycle: lobby formation, roster
// membership, game start with terrain handoff, and per-room broadcast of
// state changes.
//
// All mutations to one room are serialized by that room's mutex; rooms never
// share locks, so operations on different rooms proceed in parallel.
package room

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/deadshot465/demo-game/internal/game/broadcast"
	"github.com/deadshot465/demo-game/internal/game/player"
)

// Sentinel errors. The gateway maps these to response statuses.
var (
	// ErrNotFound is returned when no room matches the given id.
	ErrNotFound = errors.New("room: not found")
	// ErrUnavailable is returned when a room cannot accept a join: it is
	// full or the game has already started.
	ErrUnavailable = errors.New("room: unavailable")
	// ErrNotOwner is returned when a non-owner tries to start the game.
	ErrNotOwner = errors.New("room: not owner")
	// ErrAlreadyStarted is returned when starting a started room.
	ErrAlreadyStarted = errors.New("room: already started")
	// ErrNotStarted is returned when fetching terrain before the start.
	ErrNotStarted = errors.New("room: not started")

	// errClosed is internal: the room was removed between lookup and join.
	errClosed = errors.New("room: closed")
)

// Occupant is one roster entry in a room snapshot.
type Occupant struct {
	Player player.Player
	Owner  bool
}

// Snapshot is an immutable view of a room, published to subscribers on
// every roster or started-flag change.
type Snapshot struct {
	ID         string
	Name       string
	MaxPlayers int
	Started    bool
	Players    []Occupant
	// Message describes the change that produced this snapshot.
	Message string
}

// CurrentPlayers returns the roster size.
func (s Snapshot) CurrentPlayers() int {
	return len(s.Players)
}

// Room is a single game room. The zero value is not usable; rooms are
// created through Registry.Join.
type Room struct {
	id       string
	name     string
	capacity int
	logger   *zap.Logger
	hub      *broadcast.Hub[Snapshot]

	mu      sync.Mutex
	started bool
	closed  bool
	terrain []byte
	ownerID string
	roster  []player.Player // join order; roster[i].ID == ownerID marks the owner
}

func newRoom(id, name string, capacity, buffer int, logger *zap.Logger) *Room {
	return &Room{
		id:       id,
		name:     name,
		capacity: capacity,
		logger:   logger,
		hub:      broadcast.NewHub[Snapshot](logger, buffer),
	}
}

// ID returns the room's unique id.
func (r *Room) ID() string { return r.id }

// Name returns the room's display name.
func (r *Room) Name() string { return r.name }

// join adds p to the roster and subscribes them to the room's hub. A player
// already on the roster is resubscribed without growing the roster.
//
// The snapshot publish happens while the room mutex is held: hub delivery
// never blocks, and holding the lock is what gives every subscriber the
// same total order of room mutations.
func (r *Room) join(p player.Player) (*broadcast.Subscriber[Snapshot], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errClosed
	}
	if r.started {
		return nil, fmt.Errorf("%w: game already started", ErrUnavailable)
	}

	if !r.memberLocked(p.ID) {
		if len(r.roster) >= r.capacity {
			return nil, fmt.Errorf("%w: room full", ErrUnavailable)
		}
		r.roster = append(r.roster, p)
		if len(r.roster) == 1 {
			r.ownerID = p.ID
		}
	}

	sub := r.hub.Subscribe(p.ID)
	r.publishLocked(fmt.Sprintf("%s joined the room", displayName(p)))
	return sub, nil
}

// Leave removes the player from the roster and republishes state to the
// remaining subscribers. Returns true when the roster became empty and the
// room closed.
//
// A Leave carrying a subscriber that is no longer the player's registered
// one is a stale teardown: the player reconnected on a new stream and the
// old stream's cleanup must not touch the roster.
//
// Postcondition: sub is closed. If the departing player owned the room and
// others remain, ownership passes to the next roster member in join order.
func (r *Room) Leave(playerID string, sub *broadcast.Subscriber[Snapshot]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub != nil {
		if !r.hub.IsCurrent(sub) {
			sub.Close()
			return r.closed
		}
		r.hub.Unsubscribe(sub)
	}

	idx := -1
	for i, p := range r.roster {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r.closed
	}

	departed := r.roster[idx]
	r.roster = append(r.roster[:idx], r.roster[idx+1:]...)

	if len(r.roster) == 0 {
		r.closed = true
		r.hub.Close()
		return true
	}

	msg := fmt.Sprintf("%s left the room", displayName(departed))
	if r.ownerID == playerID {
		r.ownerID = r.roster[0].ID
		msg = fmt.Sprintf("%s left the room, %s is now the owner",
			displayName(departed), displayName(r.roster[0]))
	}
	r.publishLocked(msg)
	return false
}

// Start marks the room started and stores the terrain payload.
//
// Precondition: callerID must be the room owner.
// Postcondition: started is true (monotonic, never reset), the transition
// snapshot is published exactly once, strictly after every join/leave that
// completed before this call.
func (r *Room) Start(callerID string, terrain []byte) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Snapshot{}, ErrNotFound
	}
	if r.started {
		return Snapshot{}, ErrAlreadyStarted
	}
	if callerID != r.ownerID {
		return Snapshot{}, ErrNotOwner
	}

	r.started = true
	r.terrain = append([]byte(nil), terrain...)
	return r.publishLocked("game started"), nil
}

// Terrain returns the opaque terrain payload of a started room.
func (r *Room) Terrain() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrNotFound
	}
	if !r.started {
		return nil, ErrNotStarted
	}
	return append([]byte(nil), r.terrain...), nil
}

// Snapshot returns the current room state without publishing.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked("")
}

func (r *Room) memberLocked(playerID string) bool {
	for _, p := range r.roster {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

func (r *Room) snapshotLocked(message string) Snapshot {
	occupants := make([]Occupant, len(r.roster))
	for i, p := range r.roster {
		occupants[i] = Occupant{Player: p, Owner: p.ID == r.ownerID}
	}
	return Snapshot{
		ID:         r.id,
		Name:       r.name,
		MaxPlayers: r.capacity,
		Started:    r.started,
		Players:    occupants,
		Message:    message,
	}
}

func (r *Room) publishLocked(message string) Snapshot {
	snap := r.snapshotLocked(message)
	r.hub.Publish(snap)
	return snap
}

func displayName(p player.Player) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.UserName
}
