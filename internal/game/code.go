package game

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"math/rand/v2"
	"strconv"
	"time"
)

// codeAttempts bounds room-code regeneration so a pathologically full
// code space fails with ErrRoomSpaceExhausted instead of spinning.
const codeAttempts = 64

// NewRoomCode returns a string of exactly four decimal digits drawn
// uniformly from 1000-9999. The four-digit floor means no code ever
// starts with a zero.
func NewRoomCode() string {
	return strconv.Itoa(1000 + rand.IntN(9000))
}

// NewPlayerID returns a short opaque identifier. Uniqueness is
// best-effort: collisions inside a room resolve by replacement, so
// global uniqueness is not required.
func NewPlayerID() string {
	const size = 8

	buf := make([]byte, size)
	if _, err := cryptorand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}

	// Fallback to timestamp if crypto/rand is unavailable.
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
