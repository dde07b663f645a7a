package game

import (
	"strconv"
	"strings"
)

// DefaultColor is assigned when a candidate carries no usable color.
const DefaultColor = "#ef4444"

// Player is a participant in a room as stored by the coordinator.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Ready  bool   `json:"ready"`
	Tile   int    `json:"tile"`
	IsHost bool   `json:"isHost"`
}

// Candidate is an untrusted player-shaped payload as received from a
// client. Field types are unconstrained until ParsePlayer or
// SanitizePlayer has seen them.
type Candidate struct {
	ID     any `json:"id"`
	Name   any `json:"name"`
	Color  any `json:"color"`
	Ready  any `json:"ready"`
	Tile   any `json:"tile"`
	IsHost any `json:"isHost"`
}

// ParsePlayer validates a candidate and returns its sanitized form.
// A candidate is accepted iff id is a non-empty string, name is a
// string that is non-empty after trimming, color is a string, and
// ready is a bool. Anything else fails with ErrInvalidPlayer.
func ParsePlayer(c Candidate) (Player, error) {
	id, ok := c.ID.(string)
	if !ok || id == "" {
		return Player{}, ErrInvalidPlayer
	}
	name, ok := c.Name.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return Player{}, ErrInvalidPlayer
	}
	if _, ok := c.Color.(string); !ok {
		return Player{}, ErrInvalidPlayer
	}
	if _, ok := c.Ready.(bool); !ok {
		return Player{}, ErrInvalidPlayer
	}
	return SanitizePlayer(c), nil
}

// SanitizePlayer normalizes a candidate into a well-formed Player. It
// never fails: id, name and color are coerced to strings, name is
// trimmed, a blank color falls back to DefaultColor, ready and isHost
// are coerced to booleans, and tile defaults to 1 unless the candidate
// already carries a number. Applying it twice yields the same result.
func SanitizePlayer(c Candidate) Player {
	color := coerceString(c.Color)
	if color == "" {
		color = DefaultColor
	}
	return Player{
		ID:     coerceString(c.ID),
		Name:   strings.TrimSpace(coerceString(c.Name)),
		Color:  color,
		Ready:  coerceBool(c.Ready),
		Tile:   coerceTile(c.Tile),
		IsHost: coerceBool(c.IsHost),
	}
}

// Candidate returns the player as a candidate payload, for callers
// that re-submit a stored record through an operation.
func (p Player) Candidate() Candidate {
	return Candidate{
		ID:     p.ID,
		Name:   p.Name,
		Color:  p.Color,
		Ready:  p.Ready,
		Tile:   p.Tile,
		IsHost: p.IsHost,
	}
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		// JSON numbers decode as float64.
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceBool mirrors truthiness: nil, false, zero and the empty string
// are false, everything else is true.
func coerceBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case int:
		return b != 0
	case int64:
		return b != 0
	case float64:
		return b != 0
	default:
		return true
	}
}

func coerceTile(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 1
	}
}
