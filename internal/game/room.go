package game

// Room is a multiplayer session container. Players are kept in join
// order; turn order derives from it once the game has started.
type Room struct {
	Code    string   `json:"code"`
	Players []Player `json:"players"`
	Started bool     `json:"started"`
	HostID  string   `json:"hostId"`
	Turn    string   `json:"turn,omitempty"`
}

// playerIndex returns the position of the player with the given id,
// or -1 if absent.
func (r *Room) playerIndex(id string) int {
	for i, p := range r.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// removePlayer deletes the player with the given id, preserving the
// order of the rest. Returns the removed record and whether it existed.
func (r *Room) removePlayer(id string) (Player, bool) {
	i := r.playerIndex(id)
	if i < 0 {
		return Player{}, false
	}
	removed := r.Players[i]
	r.Players = append(r.Players[:i], r.Players[i+1:]...)
	return removed, true
}

// clone deep-copies the room and derives each player's IsHost flag
// from the room's host id, so callers outside the coordinator
// goroutine never share state with the store.
func (r Room) clone() Room {
	out := r
	out.Players = make([]Player, len(r.Players))
	for i, p := range r.Players {
		p.IsHost = p.ID == r.HostID
		out.Players[i] = p
	}
	return out
}
