package game

// EventKind is a notification the coordinator pushes to subscribers.
type EventKind int

const (
	// EventSnapshot carries the full room-store mapping after a
	// mutation. Every subscriber receives every snapshot; clients
	// index into it by their own room code.
	EventSnapshot EventKind = iota
	// EventPlayerJoined is the discrete join notification used for
	// transient UI, layered on top of the snapshot channel.
	EventPlayerJoined
	// EventPlayerLeft is the discrete leave notification.
	EventPlayerLeft
	// EventDiceRolled announces a roll so clients can animate the
	// move without diffing snapshots.
	EventDiceRolled
)

// Notice is the payload of the discrete notifications.
type Notice struct {
	PlayerName string `json:"playerName"`
	RoomCode   string `json:"roomCode"`
	Roll       int    `json:"roll,omitempty"`
	Tile       int    `json:"tile,omitempty"`
}

// Event is sent to subscribers to describe what happened.
type Event struct {
	Kind     EventKind
	Snapshot map[string]Room
	Notice   Notice
}

// Subscriber is a transport channel registered for broadcasts.
type Subscriber struct {
	ID     string
	Events chan *Event
}

// NewSubscriber constructs a subscriber with a buffered event channel.
// The coordinator drops events for subscribers whose buffer is full
// rather than blocking.
func NewSubscriber(id string) *Subscriber {
	return &Subscriber{
		ID:     id,
		Events: make(chan *Event, 16),
	}
}
