package connection

import "fmt"

const (
	ConnLoopBreak uint8 = iota
	ConnLoopRetry
	ConnLoopContinue
)

// ConnErr is returned when a spectator connection can no longer be used.
type ConnErr struct {
	code      uint8
	sessionId string
	err       error
}

func NewConnErr(code uint8, sessionId string, err error) ConnErr {
	return ConnErr{code: code, sessionId: sessionId, err: err}
}

func (c ConnErr) Error() string {
	return fmt.Sprintf("spectator session %s - code: %d\tdesc: %v", c.sessionId, c.code, c.err)
}

func (c ConnErr) Unwrap() error {
	return c.err
}

func (c ConnErr) Code() uint8 {
	return c.code
}
