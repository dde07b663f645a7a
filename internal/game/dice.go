package game

import "math/rand/v2"

// BoardSize is the last tile of the board. A roll that would carry a
// player past it leaves the player unmoved for that turn.
const BoardSize = 200

// RollDice returns the sum of two independent six-sided dice, so a
// value in [2,12] with the usual triangular distribution.
func RollDice() int {
	return rand.IntN(6) + rand.IntN(6) + 2
}
