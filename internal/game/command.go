package game

// commandKind describes what a caller wants the coordinator to do.
type commandKind int

const (
	commandCreateRoom commandKind = iota
	commandJoinRoom
	commandLeaveRoom
	commandUpdatePlayer
	commandStartGame
	commandRollDice
	commandGetRoom
	commandSnapshot
	commandSubscribe
	commandUnsubscribe
	commandNotifyLeft
)

// command is a single request serialized through the coordinator's
// run loop. Reply carries exactly one result.
type command struct {
	kind      commandKind
	code      string
	playerID  string
	name      string
	candidate Candidate
	sub       *Subscriber
	reply     chan result
}

// result is the two-outcome acknowledgement of a command: err is set,
// or the requested value is.
type result struct {
	room     Room
	snapshot map[string]Room
	err      error
}
