package connection

const (
	CodeSessionID uint8 = iota

	// Game events, in the order a spectator usually sees them
	CodeShipPlaced
	CodeTurnStart
	CodeHit
	CodeMiss
	CodeWin
	CodeDraw

	// Spectator asks for every event of the match so far
	CodeReplay
	CodeReplayEnd

	CodeInvalidSignal

	// the req msg is not json or has no "code" field
	CodeSignalAbsent
)

// Signal is the only shape a spectator request takes. Code is a pointer
// so a request without the field can be told apart from code 0.
type Signal struct {
	Code *uint8 `json:"code"`
}
