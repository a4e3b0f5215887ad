package connection

type NoPayload bool

// Message is the envelope of everything written to a spectator. Seq is
// the position of a game event in the match, zero for control messages.
type Message[T any] struct {
	Code    uint8    `json:"code"`
	Seq     int      `json:"seq,omitempty"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8, payload T) Message[T] {
	return Message[T]{Code: code, Payload: payload}
}

// NewEvent wraps a game event numbered seq within the match.
func NewEvent[T any](code uint8, seq int, payload T) Message[T] {
	return Message[T]{Code: code, Seq: seq, Payload: payload}
}

// NewErrorMessage answers a spectator request that could not be served.
func NewErrorMessage(code uint8, errorDetails, message string) Message[NoPayload] {
	return Message[NoPayload]{Code: code, Error: NewRespErr(errorDetails, message)}
}
