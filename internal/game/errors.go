package game

// Error codes for domain errors.
const (
	ErrCodeInvalidPlayer      = "invalid_player"
	ErrCodeRoomNotFound       = "room_not_found"
	ErrCodeRoomSpaceExhausted = "room_space_exhausted"
	ErrCodeGameNotStarted     = "game_not_started"
	ErrCodeNotYourTurn        = "not_your_turn"
	ErrCodeBadRequest         = "bad_request"
)

// Error wraps a stable code and human-readable message. Coordinator
// operations report failures through these values only; nothing in the
// core ever panics on bad input.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidPlayer      = &Error{Code: ErrCodeInvalidPlayer, Message: "missing or invalid player"}
	ErrRoomNotFound       = &Error{Code: ErrCodeRoomNotFound, Message: "room not found"}
	ErrRoomSpaceExhausted = &Error{Code: ErrCodeRoomSpaceExhausted, Message: "no unused room code available"}
	ErrGameNotStarted     = &Error{Code: ErrCodeGameNotStarted, Message: "game has not started"}
	ErrNotYourTurn        = &Error{Code: ErrCodeNotYourTurn, Message: "not this player's turn"}
)

// ErrCode extracts the domain error code, or bad_request for errors
// that did not originate in the core.
func ErrCode(err error) string {
	if derr, ok := err.(*Error); ok {
		return derr.Code
	}
	return ErrCodeBadRequest
}
