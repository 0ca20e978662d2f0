package room

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deadshot465/demo-game/internal/game/broadcast"
	"github.com/deadshot465/demo-game/internal/game/player"
)

// Registry owns the set of active rooms. Registry operations take the
// registry lock only for map access; room mutations run under the room's
// own mutex so unrelated rooms never contend.
type Registry struct {
	logger   *zap.Logger
	capacity int
	buffer   int

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry creates an empty room registry. capacity bounds each room's
// roster; buffer is the per-subscriber event channel depth.
//
// Precondition: logger must be non-nil; capacity and buffer must be positive.
func NewRegistry(logger *zap.Logger, capacity, buffer int) *Registry {
	return &Registry{
		logger:   logger,
		capacity: capacity,
		buffer:   buffer,
		rooms:    make(map[string]*Room),
	}
}

// List returns a snapshot of every active room, ordered by room id.
func (reg *Registry) List() []Snapshot {
	reg.mu.RLock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, r := range reg.rooms {
		rooms = append(rooms, r)
	}
	reg.mu.RUnlock()

	snaps := make([]Snapshot, 0, len(rooms))
	for _, r := range rooms {
		snap := r.Snapshot()
		// A room that closed after the map read is skipped.
		if len(snap.Players) > 0 {
			snaps = append(snaps, snap)
		}
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].ID < snaps[j].ID })
	return snaps
}

// Get returns the room with the given id, or ErrNotFound.
func (reg *Registry) Get(roomID string) (*Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rooms[roomID]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Join adds the player to the room with the given id, creating the room
// (with the player as owner and roomName as its name) when the id is
// unknown or empty. Returns the room and the player's live subscription.
//
// Postcondition: On success the player is on the roster, the join snapshot
// has been published to all room subscribers, and the returned subscriber
// receives every subsequent snapshot. The caller must release the
// subscription with Release on every exit path of its stream.
func (reg *Registry) Join(roomID, roomName string, p player.Player) (*Room, *broadcast.Subscriber[Snapshot], error) {
	for {
		r, created := reg.getOrCreate(roomID, roomName)
		sub, err := r.join(p)
		if err != nil {
			// The room closed between lookup and join; a fresh lookup
			// either finds the replacement or creates a new room.
			if errors.Is(err, errClosed) {
				reg.remove(r)
				continue
			}
			if created {
				reg.remove(r)
			}
			return nil, nil, err
		}
		if created {
			reg.logger.Info("room created",
				zap.String("room_id", r.ID()),
				zap.String("room_name", r.Name()),
				zap.String("owner", p.ID),
			)
		}
		return r, sub, nil
	}
}

// Release detaches the player's subscription and removes them from the
// roster. When the last player leaves, the room is garbage-collected from
// the registry. Safe to call on every stream exit path.
func (reg *Registry) Release(r *Room, playerID string, sub *broadcast.Subscriber[Snapshot]) {
	if r.Leave(playerID, sub) {
		reg.remove(r)
		reg.logger.Info("room closed", zap.String("room_id", r.ID()))
	}
}

// Count returns the number of active rooms.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

func (reg *Registry) getOrCreate(roomID, roomName string) (r *Room, created bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if roomID != "" {
		if existing, ok := reg.rooms[roomID]; ok {
			return existing, false
		}
	} else {
		roomID = uuid.NewString()
	}

	r = newRoom(roomID, roomName, reg.capacity, reg.buffer,
		reg.logger.With(zap.String("room_id", roomID)))
	reg.rooms[roomID] = r
	return r, true
}

// remove deletes the room from the map if it is still the registered one.
func (reg *Registry) remove(r *Room) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.rooms[r.id] == r {
		delete(reg.rooms, r.id)
	}
}
