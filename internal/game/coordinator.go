package game

import (
	"context"

	"github.com/rs/zerolog"
)

// Coordinator is the room/session state machine. A single goroutine
// (Run) owns the store and processes commands to completion one at a
// time, so every operation is atomic with respect to the store and no
// locking is needed anywhere in the core.
type Coordinator struct {
	store    Store
	commands chan *command
	subs     map[string]*Subscriber
	log      *zerolog.Logger

	// roll produces one dice result; swapped in tests.
	roll func() int
}

// New constructs a coordinator around the given store. The store must
// not be touched by anyone else once handed over.
func New(store Store, logger *zerolog.Logger) *Coordinator {
	return &Coordinator{
		store:    store,
		commands: make(chan *command, 64),
		subs:     make(map[string]*Subscriber),
		log:      logger,
		roll:     RollDice,
	}
}

// Run processes commands until the context is cancelled. It must be
// running before any operation is called.
func (c *Coordinator) Run(ctx context.Context) {
	for {
		select {
		case cmd := <-c.commands:
			c.handle(cmd)
		case <-ctx.Done():
			return
		}
	}
}

// CreateRoom validates the host candidate, generates an unused room
// code and stores a fresh lobby with the host as its only player.
func (c *Coordinator) CreateRoom(ctx context.Context, host Candidate) (Room, error) {
	res, err := c.do(ctx, &command{kind: commandCreateRoom, candidate: host})
	return res.room, err
}

// JoinRoom adds the candidate to the room. Joining with an id already
// present replaces that player's record instead of appending, which is
// how reconnects work.
func (c *Coordinator) JoinRoom(ctx context.Context, code string, player Candidate) (Room, error) {
	res, err := c.do(ctx, &command{kind: commandJoinRoom, code: code, candidate: player})
	return res.room, err
}

// LeaveRoom removes the player from the room. Removing an absent
// player is a no-op, not an error. The room is deleted only when the
// departing player is the host and nobody remains afterward.
func (c *Coordinator) LeaveRoom(ctx context.Context, code, playerID string) error {
	_, err := c.do(ctx, &command{kind: commandLeaveRoom, code: code, playerID: playerID})
	return err
}

// UpdatePlayer replaces the matching player's full record with the
// sanitized candidate. It is a replace, not a merge: callers echo the
// fields they want preserved.
func (c *Coordinator) UpdatePlayer(ctx context.Context, code string, player Candidate) (Room, error) {
	res, err := c.do(ctx, &command{kind: commandUpdatePlayer, code: code, candidate: player})
	return res.room, err
}

// StartGame flips the room to started and seeds the turn with the
// first player in join order. There is no server-side readiness gate;
// the product documents the "everyone ready" rule as a client
// affordance only.
func (c *Coordinator) StartGame(ctx context.Context, code string) (Room, error) {
	res, err := c.do(ctx, &command{kind: commandStartGame, code: code})
	return res.room, err
}

// RollDice rolls two dice for the turn-holding player, advances their
// tile (unless the roll would overshoot the board) and passes the turn
// to the next player in join order.
func (c *Coordinator) RollDice(ctx context.Context, code, playerID string) (Room, error) {
	res, err := c.do(ctx, &command{kind: commandRollDice, code: code, playerID: playerID})
	return res.room, err
}

// GetRoom returns a copy of the room, or ErrRoomNotFound.
func (c *Coordinator) GetRoom(ctx context.Context, code string) (Room, error) {
	res, err := c.do(ctx, &command{kind: commandGetRoom, code: code})
	return res.room, err
}

// Snapshot returns a copy of the full room-store mapping.
func (c *Coordinator) Snapshot(ctx context.Context) (map[string]Room, error) {
	res, err := c.do(ctx, &command{kind: commandSnapshot})
	return res.snapshot, err
}

// Subscribe registers a transport channel for broadcasts.
func (c *Coordinator) Subscribe(sub *Subscriber) {
	c.commands <- &command{kind: commandSubscribe, sub: sub}
}

// Unsubscribe discards the subscriber. Its event channel is not
// closed; the transport simply stops reading it.
func (c *Coordinator) Unsubscribe(sub *Subscriber) {
	c.commands <- &command{kind: commandUnsubscribe, sub: sub}
}

// NotifyLeft emits a best-effort player:left notification without
// touching the room, used when a transport connection drops. The
// player stays in the room so it can rejoin seamlessly.
func (c *Coordinator) NotifyLeft(ctx context.Context, code, playerName string) error {
	_, err := c.do(ctx, &command{kind: commandNotifyLeft, code: code, name: playerName})
	return err
}

func (c *Coordinator) do(ctx context.Context, cmd *command) (result, error) {
	cmd.reply = make(chan result, 1)

	select {
	case c.commands <- cmd:
	case <-ctx.Done():
		return result{}, ctx.Err()
	}

	select {
	case res := <-cmd.reply:
		return res, res.err
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
}

func (c *Coordinator) handle(cmd *command) {
	switch cmd.kind {
	case commandCreateRoom:
		cmd.reply <- c.createRoom(cmd.candidate)
	case commandJoinRoom:
		cmd.reply <- c.joinRoom(cmd.code, cmd.candidate)
	case commandLeaveRoom:
		cmd.reply <- c.leaveRoom(cmd.code, cmd.playerID)
	case commandUpdatePlayer:
		cmd.reply <- c.updatePlayer(cmd.code, cmd.candidate)
	case commandStartGame:
		cmd.reply <- c.startGame(cmd.code)
	case commandRollDice:
		cmd.reply <- c.rollDice(cmd.code, cmd.playerID)
	case commandGetRoom:
		cmd.reply <- c.getRoom(cmd.code)
	case commandSnapshot:
		cmd.reply <- result{snapshot: c.store.GetAll()}
	case commandSubscribe:
		c.subs[cmd.sub.ID] = cmd.sub
	case commandUnsubscribe:
		delete(c.subs, cmd.sub.ID)
	case commandNotifyLeft:
		c.broadcastNotice(EventPlayerLeft, Notice{PlayerName: cmd.name, RoomCode: cmd.code})
		cmd.reply <- result{}
	}
}

func (c *Coordinator) createRoom(candidate Candidate) result {
	host, err := ParsePlayer(candidate)
	if err != nil {
		return result{err: err}
	}

	code := ""
	for range codeAttempts {
		next := NewRoomCode()
		if _, taken := c.store.Get(next); !taken {
			code = next
			break
		}
	}
	if code == "" {
		return result{err: ErrRoomSpaceExhausted}
	}

	host.Tile = 1
	host.Ready = false
	room := Room{
		Code:    code,
		Players: []Player{host},
		Started: false,
		HostID:  host.ID,
	}
	c.store.Set(code, room)

	c.log.Info().Str("room", code).Str("host", host.ID).Msg("room created")
	c.broadcastSnapshot()
	return result{room: room.clone()}
}

func (c *Coordinator) joinRoom(code string, candidate Candidate) result {
	room, ok := c.store.Get(code)
	if !ok {
		return result{err: ErrRoomNotFound}
	}
	player, err := ParsePlayer(candidate)
	if err != nil {
		return result{err: err}
	}

	// Reconnection replaces, never duplicates.
	room.removePlayer(player.ID)
	player.Tile = 1
	room.Players = append(room.Players, player)
	c.store.Set(code, room)

	c.log.Info().Str("room", code).Str("player", player.ID).Msg("player joined")
	c.broadcastSnapshot()
	c.broadcastNotice(EventPlayerJoined, Notice{PlayerName: player.Name, RoomCode: code})
	return result{room: room.clone()}
}

func (c *Coordinator) leaveRoom(code, playerID string) result {
	room, ok := c.store.Get(code)
	if !ok {
		return result{err: ErrRoomNotFound}
	}

	name := "someone"
	turnIdx := -1
	if room.Turn == playerID {
		turnIdx = room.playerIndex(playerID)
	}
	if removed, found := room.removePlayer(playerID); found {
		name = removed.Name
	}

	// Pass the turn if the departing player held it.
	if turnIdx >= 0 {
		if len(room.Players) == 0 {
			room.Turn = ""
		} else {
			room.Turn = room.Players[turnIdx%len(room.Players)].ID
		}
	}

	if room.HostID == playerID && len(room.Players) == 0 {
		c.store.Delete(code)
		c.log.Info().Str("room", code).Msg("room deleted")
	} else {
		c.store.Set(code, room)
	}

	c.log.Info().Str("room", code).Str("player", playerID).Msg("player left")
	c.broadcastNotice(EventPlayerLeft, Notice{PlayerName: name, RoomCode: code})
	c.broadcastSnapshot()
	return result{}
}

func (c *Coordinator) updatePlayer(code string, candidate Candidate) result {
	room, ok := c.store.Get(code)
	if !ok {
		return result{err: ErrRoomNotFound}
	}
	player, err := ParsePlayer(candidate)
	if err != nil {
		return result{err: err}
	}

	if i := room.playerIndex(player.ID); i >= 0 {
		room.Players[i] = player
	}
	c.store.Set(code, room)

	c.log.Debug().Str("room", code).Str("player", player.ID).Msg("player updated")
	c.broadcastSnapshot()
	return result{room: room.clone()}
}

func (c *Coordinator) startGame(code string) result {
	room, ok := c.store.Get(code)
	if !ok {
		return result{err: ErrRoomNotFound}
	}

	room.Started = true
	if room.Turn == "" && len(room.Players) > 0 {
		room.Turn = room.Players[0].ID
	}
	c.store.Set(code, room)

	c.log.Info().Str("room", code).Msg("game started")
	c.broadcastSnapshot()
	return result{room: room.clone()}
}

func (c *Coordinator) rollDice(code, playerID string) result {
	room, ok := c.store.Get(code)
	if !ok {
		return result{err: ErrRoomNotFound}
	}
	if !room.Started {
		return result{err: ErrGameNotStarted}
	}
	if room.Turn != playerID {
		return result{err: ErrNotYourTurn}
	}
	i := room.playerIndex(playerID)
	if i < 0 {
		return result{err: ErrNotYourTurn}
	}

	roll := c.roll()
	if target := room.Players[i].Tile + roll; target <= BoardSize {
		room.Players[i].Tile = target
	}
	room.Turn = room.Players[(i+1)%len(room.Players)].ID
	c.store.Set(code, room)

	c.log.Debug().Str("room", code).Str("player", playerID).Int("roll", roll).Msg("dice rolled")
	c.broadcastSnapshot()
	c.broadcastNotice(EventDiceRolled, Notice{
		PlayerName: room.Players[i].Name,
		RoomCode:   code,
		Roll:       roll,
		Tile:       room.Players[i].Tile,
	})
	return result{room: room.clone()}
}

func (c *Coordinator) getRoom(code string) result {
	room, ok := c.store.Get(code)
	if !ok {
		return result{err: ErrRoomNotFound}
	}
	return result{room: room}
}

// broadcastSnapshot fans the entire store mapping out to every
// subscriber, unfiltered. Clients index into it by their own room code.
func (c *Coordinator) broadcastSnapshot() {
	snapshot := c.store.GetAll()
	c.broadcast(&Event{Kind: EventSnapshot, Snapshot: snapshot})
}

func (c *Coordinator) broadcastNotice(kind EventKind, notice Notice) {
	c.broadcast(&Event{Kind: kind, Notice: notice})
}

func (c *Coordinator) broadcast(event *Event) {
	for _, sub := range c.subs {
		select {
		case sub.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}
