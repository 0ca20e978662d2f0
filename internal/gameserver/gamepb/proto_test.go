package gamepb_test

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gamepb "github.com/deadshot465/demo-game/internal/gameserver/gamepb"
)

func TestProto_RegisterRequest_Roundtrip(t *testing.T) {
	orig := &gamepb.RegisterRequest{
		UserName: "alice", Nickname: "Ace", Email: "alice@example.com",
		Password: "hunter2", JwtToken: "tok",
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &gamepb.RegisterRequest{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.Equal(t, orig.UserName, got.UserName)
	assert.Equal(t, orig.Nickname, got.Nickname)
	assert.Equal(t, orig.Email, got.Email)
	assert.Equal(t, orig.JwtToken, got.JwtToken)
}

func TestProto_Player_NestedState_Roundtrip(t *testing.T) {
	orig := &gamepb.Player{
		PlayerId: "p1",
		UserName: "alice",
		Credits:  1000,
		State: &gamepb.PlayerState{
			IsInGame: true,
			RoomId:   "r1",
			IsOwner:  true,
			State: &gamepb.EntityState{
				CurrentHp: 100, MaxHp: 100, IsAlive: true,
				WorldMatrix: &gamepb.WorldMatrix{
					Position: []float32{1, 2, 3},
					Scale:    []float32{1, 1, 1},
					Rotation: []float32{0, 0, 0, 1},
				},
			},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got gamepb.Player
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.Equal(t, int32(1000), got.GetCredits())
	require.NotNil(t, got.GetState())
	assert.True(t, got.GetState().GetIsOwner())
	assert.Equal(t, "r1", got.GetState().GetRoomId())
	require.NotNil(t, got.GetState().GetState().GetWorldMatrix())
	assert.Equal(t, []float32{1, 2, 3}, got.GetState().GetState().GetWorldMatrix().GetPosition())
}

func TestProto_RoomState_Roundtrip(t *testing.T) {
	orig := &gamepb.RoomState{
		RoomId: "r1", RoomName: "arena",
		CurrentPlayers: 2, MaxPlayers: 8, Started: true,
		Players: []*gamepb.Player{{PlayerId: "p1"}, {PlayerId: "p2"}},
		Message: "p2 joined",
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got gamepb.RoomState
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.True(t, got.Started)
	require.Len(t, got.Players, 2)
	assert.Equal(t, "p2", got.Players[1].PlayerId)
	assert.Equal(t, "p2 joined", got.Message)
}

func TestProto_IncomingMessages_Roundtrip(t *testing.T) {
	orig := &gamepb.IncomingMessages{
		Messages: []*gamepb.IncomingMessage{
			{Author: "alice", Message: "hello"},
			{Author: "bob", Message: "hey"},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got gamepb.IncomingMessages
	require.NoError(t, proto.Unmarshal(data, &got))
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "alice", got.Messages[0].Author)
	assert.Equal(t, "hey", got.Messages[1].Message)
}

func TestProto_StartGameRequest_Roundtrip(t *testing.T) {
	orig := &gamepb.StartGameRequest{
		RoomState:       &gamepb.RoomState{RoomId: "r1"},
		TerrainVertices: []byte{0x01, 0x02, 0x03},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got gamepb.StartGameRequest
	require.NoError(t, proto.Unmarshal(data, &got))
	require.NotNil(t, got.RoomState)
	assert.Equal(t, "r1", got.RoomState.RoomId)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got.TerrainVertices)
}
