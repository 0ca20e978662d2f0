// Package gameserver implements the gRPC session gateway: it validates
// tokens, routes unary calls to the player registry, chat log, and room
// registry, and owns the lifecycle of every streaming connection.
package gameserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/deadshot465/demo-game/internal/auth"
	"github.com/deadshot465/demo-game/internal/game/chat"
	"github.com/deadshot465/demo-game/internal/game/player"
	"github.com/deadshot465/demo-game/internal/game/room"
	"github.com/deadshot465/demo-game/internal/gameserver/gamepb"
)

// GrpcServiceServer implements the gRPC GrpcService contract. It holds no
// business state of its own; every call is delegated to the token verifier,
// player registry, chat log, or room registry.
type GrpcServiceServer struct {
	gamepb.UnimplementedGrpcServiceServer
	verifier *auth.Verifier
	players  player.Registry
	chat     *chat.Log
	rooms    *room.Registry
	logger   *zap.Logger
}

// NewGrpcServiceServer creates a GrpcServiceServer with the given dependencies.
//
// Precondition: all dependencies must be non-nil.
func NewGrpcServiceServer(
	verifier *auth.Verifier,
	players player.Registry,
	chatLog *chat.Log,
	rooms *room.Registry,
	logger *zap.Logger,
) *GrpcServiceServer {
	return &GrpcServiceServer{
		verifier: verifier,
		players:  players,
		chat:     chatLog,
		rooms:    rooms,
		logger:   logger,
	}
}

// Register creates a new player account. Authentication and domain failures
// are reported in the reply status, never as an RPC fault; only
// infrastructure failures surface as gRPC errors.
func (s *GrpcServiceServer) Register(ctx context.Context, req *gamepb.RegisterRequest) (*gamepb.RegisterReply, error) {
	if _, err := s.verifier.Verify(req.GetJwtToken()); err != nil {
		s.logger.Info("register rejected",
			zap.String("account", req.GetUserName()),
			zap.Error(err),
		)
		return &gamepb.RegisterReply{Status: false, Message: authMessage(err)}, nil
	}

	p, err := s.players.Register(ctx, req.GetUserName(), req.GetNickname(), req.GetEmail(), req.GetPassword())
	switch {
	case errors.Is(err, player.ErrAccountExists):
		return &gamepb.RegisterReply{Status: false, Message: "Account already exists."}, nil
	case errors.Is(err, player.ErrUnavailable):
		return nil, status.Error(codes.Unavailable, "player registry unavailable")
	case err != nil:
		return nil, status.Errorf(codes.Internal, "registering player: %v", err)
	}

	s.logger.Info("player registered",
		zap.String("player_id", p.ID),
		zap.String("account", p.UserName),
	)
	return &gamepb.RegisterReply{
		Status:  true,
		Message: "Registration successful.",
		Player:  protoPlayer(p),
	}, nil
}

// Login authenticates an existing account.
func (s *GrpcServiceServer) Login(ctx context.Context, req *gamepb.LoginRequest) (*gamepb.LoginReply, error) {
	if _, err := s.verifier.Verify(req.GetJwtToken()); err != nil {
		s.logger.Info("login rejected",
			zap.String("account", req.GetAccount()),
			zap.Error(err),
		)
		return &gamepb.LoginReply{Status: false, Message: authMessage(err)}, nil
	}

	p, err := s.players.Login(ctx, req.GetAccount(), req.GetPassword())
	switch {
	case errors.Is(err, player.ErrNotFound):
		return &gamepb.LoginReply{Status: false, Message: "Account not found."}, nil
	case errors.Is(err, player.ErrInvalidCredentials):
		return &gamepb.LoginReply{Status: false, Message: "Invalid credentials."}, nil
	case errors.Is(err, player.ErrUnavailable):
		return nil, status.Error(codes.Unavailable, "player registry unavailable")
	case err != nil:
		return nil, status.Errorf(codes.Internal, "logging in: %v", err)
	}

	s.logger.Info("player logged in", zap.String("player_id", p.ID))
	return &gamepb.LoginReply{
		Status:  true,
		Message: "Login successful.",
		Player:  protoPlayer(p),
	}, nil
}

// GetChatHistory returns the retained chat messages, oldest first.
func (s *GrpcServiceServer) GetChatHistory(ctx context.Context, _ *gamepb.Empty) (*gamepb.IncomingMessages, error) {
	history := s.chat.History()
	out := make([]*gamepb.IncomingMessage, len(history))
	for i, msg := range history {
		out[i] = &gamepb.IncomingMessage{Author: msg.Author, Message: msg.Body}
	}
	return &gamepb.IncomingMessages{Messages: out}, nil
}

// Chat implements the bidirectional chat stream.
// Flow:
//  1. Attach a subscriber to the global chat hub
//  2. Spawn a goroutine forwarding hub events to the gRPC stream
//  3. Main loop: read MessageRecord, resolve the author, publish
//  4. On disconnect: detach the subscriber on every exit path
func (s *GrpcServiceServer) Chat(stream gamepb.GrpcService_ChatServer) error {
	sub := s.chat.Subscribe(uuid.NewString())
	defer s.chat.Unsubscribe(sub)

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.forwardChat(ctx, sub.Events(), stream)
	}()

	err := s.chatRecvLoop(ctx, stream)

	cancel()
	wg.Wait()

	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// chatRecvLoop processes incoming MessageRecords until the stream ends.
func (s *GrpcServiceServer) chatRecvLoop(ctx context.Context, stream gamepb.GrpcService_ChatServer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := stream.Recv()
		if err == io.EOF {
			return io.EOF
		}
		if err != nil {
			return fmt.Errorf("receiving chat message: %w", err)
		}

		s.chat.Publish(ctx, chat.Message{
			Author: s.resolveAuthor(ctx, msg.GetPlayerId()),
			Body:   msg.GetMessage(),
		})
	}
}

// forwardChat reads from the subscriber channel and pushes messages to the
// gRPC stream until the channel closes or the context ends.
func (s *GrpcServiceServer) forwardChat(ctx context.Context, events <-chan chat.Message, stream gamepb.GrpcService_ChatServer) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-events:
			if !ok {
				return
			}
			out := &gamepb.IncomingMessage{Author: msg.Author, Message: msg.Body}
			if err := stream.Send(out); err != nil {
				s.logger.Debug("chat send failed", zap.Error(err))
				return
			}
		}
	}
}

// resolveAuthor maps a player id to a display name. An unknown id falls
// back to the raw id so messages are never silently dropped.
func (s *GrpcServiceServer) resolveAuthor(ctx context.Context, playerID string) string {
	p, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return playerID
	}
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.UserName
}

// GetRooms lists all active rooms.
func (s *GrpcServiceServer) GetRooms(_ context.Context, _ *gamepb.Empty) (*gamepb.Rooms, error) {
	snaps := s.rooms.List()
	out := make([]*gamepb.RoomState, len(snaps))
	for i, snap := range snaps {
		out[i] = protoRoomState(snap)
	}
	return &gamepb.Rooms{Rooms: out}, nil
}

// RegisterPlayer joins (or creates) a room and streams RoomState snapshots
// until the client disconnects. Disconnection, however it happens, removes
// the player from the roster and may garbage-collect the room.
func (s *GrpcServiceServer) RegisterPlayer(req *gamepb.RegisterPlayerRequest, stream gamepb.GrpcService_RegisterPlayerServer) error {
	if req.GetPlayer() == nil || req.GetPlayer().GetPlayerId() == "" {
		return status.Error(codes.InvalidArgument, "player identity is required")
	}
	p := domainPlayer(req.GetPlayer())

	r, sub, err := s.rooms.Join(req.GetRoomId(), req.GetRoomName(), p)
	if err != nil {
		return roomError(err)
	}
	defer s.rooms.Release(r, p.ID, sub)

	s.logger.Info("player joined room",
		zap.String("player_id", p.ID),
		zap.String("room_id", r.ID()),
	)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-sub.Events():
			if !ok {
				// Detached by the hub: the subscriber fell behind.
				return status.Error(codes.DataLoss, "room event buffer overflowed; rejoin to resume")
			}
			if err := stream.Send(protoRoomState(snap)); err != nil {
				s.logger.Debug("room state send failed",
					zap.String("player_id", p.ID),
					zap.Error(err),
				)
				return nil
			}
		}
	}
}

// StartGame starts the game in a room. Only the recorded owner may start.
func (s *GrpcServiceServer) StartGame(_ context.Context, req *gamepb.StartGameRequest) (*gamepb.RoomState, error) {
	rs := req.GetRoomState()
	if rs == nil || rs.GetRoomId() == "" {
		return nil, status.Error(codes.InvalidArgument, "room state is required")
	}

	r, err := s.rooms.Get(rs.GetRoomId())
	if err != nil {
		return nil, roomError(err)
	}

	snap, err := r.Start(callerID(rs), req.GetTerrainVertices())
	if err != nil {
		return nil, roomError(err)
	}

	s.logger.Info("game started",
		zap.String("room_id", r.ID()),
		zap.Int("players", snap.CurrentPlayers()),
		zap.Int("terrain_bytes", len(req.GetTerrainVertices())),
	)
	return protoRoomState(snap), nil
}

// GetTerrain returns the terrain payload of a started room.
func (s *GrpcServiceServer) GetTerrain(_ context.Context, req *gamepb.GetTerrainRequest) (*gamepb.GetTerrainReply, error) {
	r, err := s.rooms.Get(req.GetRoomId())
	if err != nil {
		return nil, roomError(err)
	}
	terrain, err := r.Terrain()
	if err != nil {
		return nil, roomError(err)
	}
	return &gamepb.GetTerrainReply{TerrainVertices: terrain}, nil
}

// ProgressGame is declared in the contract but carries no behavior yet.
func (s *GrpcServiceServer) ProgressGame(gamepb.GrpcService_ProgressGameServer) error {
	return status.Error(codes.Unimplemented, "ProgressGame is not implemented")
}

// callerID extracts the acting player's id from the submitted room state:
// the occupant marked as owner, falling back to the first listed player.
//
// The StartGame request carries no authenticated caller identity, so this
// id is client-supplied: any client that echoes the public room state can
// name the owner and satisfy the ownership check. Closing that hole needs
// caller identity on the wire, which the current contract does not carry.
func callerID(rs *gamepb.RoomState) string {
	var first string
	for _, p := range rs.GetPlayers() {
		if first == "" {
			first = p.GetPlayerId()
		}
		if p.GetState().GetIsOwner() {
			return p.GetPlayerId()
		}
	}
	return first
}

// authMessage renders a token verification failure for the reply message.
func authMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenMissing):
		return "Authentication token is required."
	case errors.Is(err, auth.ErrTokenExpired):
		return "Authentication token has expired."
	case errors.Is(err, auth.ErrTokenSignature):
		return "Authentication token signature is invalid."
	case errors.Is(err, auth.ErrTokenIssuer):
		return "Authentication token issuer is not recognized."
	default:
		return "Authentication token is malformed."
	}
}

// roomError maps room registry errors to gRPC status codes.
func roomError(err error) error {
	switch {
	case errors.Is(err, room.ErrNotFound):
		return status.Error(codes.NotFound, "room not found")
	case errors.Is(err, room.ErrUnavailable):
		return status.Errorf(codes.FailedPrecondition, "room unavailable: %v", err)
	case errors.Is(err, room.ErrNotOwner):
		return status.Error(codes.PermissionDenied, "only the room owner may start the game")
	case errors.Is(err, room.ErrAlreadyStarted):
		return status.Error(codes.FailedPrecondition, "game already started")
	case errors.Is(err, room.ErrNotStarted):
		return status.Error(codes.FailedPrecondition, "game not started")
	default:
		return status.Errorf(codes.Internal, "room operation failed: %v", err)
	}
}

// protoPlayer converts a domain player to its wire form. The password hash
// is never echoed to clients.
func protoPlayer(p player.Player) *gamepb.Player {
	return &gamepb.Player{
		PlayerId:  p.ID,
		UserName:  p.UserName,
		Nickname:  p.Nickname,
		Email:     p.Email,
		JoinDate:  p.JoinDate.UTC().Format(time.RFC3339),
		LastLogin: p.LastLogin.UTC().Format(time.RFC3339),
		WinCount:  p.WinCount,
		LoseCount: p.LoseCount,
		Credits:   p.Credits,
	}
}

// domainPlayer converts a wire player to its domain form.
func domainPlayer(p *gamepb.Player) player.Player {
	joinDate, _ := time.Parse(time.RFC3339, p.GetJoinDate())
	lastLogin, _ := time.Parse(time.RFC3339, p.GetLastLogin())
	return player.Player{
		ID:        p.GetPlayerId(),
		UserName:  p.GetUserName(),
		Nickname:  p.GetNickname(),
		Email:     p.GetEmail(),
		JoinDate:  joinDate,
		LastLogin: lastLogin,
		WinCount:  p.GetWinCount(),
		LoseCount: p.GetLoseCount(),
		Credits:   p.GetCredits(),
	}
}

// protoRoomState converts a room snapshot to its wire form.
func protoRoomState(snap room.Snapshot) *gamepb.RoomState {
	players := make([]*gamepb.Player, len(snap.Players))
	for i, occ := range snap.Players {
		p := protoPlayer(occ.Player)
		p.State = &gamepb.PlayerState{
			IsInGame: snap.Started,
			RoomId:   snap.ID,
			IsOwner:  occ.Owner,
		}
		players[i] = p
	}
	return &gamepb.RoomState{
		RoomId:         snap.ID,
		RoomName:       snap.Name,
		CurrentPlayers: int32(len(snap.Players)),
		MaxPlayers:     int32(snap.MaxPlayers),
		Started:        snap.Started,
		Players:        players,
		Message:        snap.Message,
	}
}
