package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client. ID is
// an optional client-chosen correlation number echoed in the ack.
type Inbound struct {
	ID   int64           `json:"id,omitempty"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeList         = "rooms:list"
	InboundTypeCreate       = "rooms:create"
	InboundTypeJoin         = "rooms:join"
	InboundTypeLeave        = "rooms:leave"
	InboundTypeUpdatePlayer = "rooms:updatePlayer"
	InboundTypeStart        = "rooms:start"
	InboundTypeRoll         = "rooms:roll"

	OutboundTypeAck   = "ack"
	OutboundTypeEvent = "event"

	EventRoomsUpdate  = "rooms:update"
	EventPlayerJoined = "player:joined"
	EventPlayerLeft   = "player:left"
	EventDiceRolled   = "dice:rolled"
)

// PlayerCandidate is the untrusted player payload on the wire. Types
// are deliberately loose; the domain layer decides what is acceptable.
type PlayerCandidate struct {
	ID     any `json:"id"`
	Name   any `json:"name"`
	Color  any `json:"color"`
	Ready  any `json:"ready"`
	Tile   any `json:"tile"`
	IsHost any `json:"isHost"`
}

// CreateData asks the server to create a room hosted by Host.
type CreateData struct {
	Host PlayerCandidate `json:"host"`
}

// JoinData asks to join (or update a player in) a specific room.
type JoinData struct {
	Code   string          `json:"code"`
	Player PlayerCandidate `json:"player"`
}

// LeaveData asks to remove a player from a room.
type LeaveData struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

// RoomData addresses a room-level request (start, roll).
type RoomData struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId,omitempty"`
}

// Outbound is the envelope for messages sent to the client. An ack
// carries either Data or Error, never both.
type Outbound struct {
	ID    int64  `json:"id,omitempty"`
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// OKData acknowledges an effect-only request such as rooms:leave.
type OKData struct {
	OK bool `json:"ok"`
}

// NoticeData is the payload of the discrete player:joined /
// player:left / dice:rolled events.
type NoticeData struct {
	PlayerName string `json:"playerName"`
	RoomCode   string `json:"roomCode"`
	Roll       int    `json:"roll,omitempty"`
	Tile       int    `json:"tile,omitempty"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
