package connection

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     time.Duration = time.Millisecond * 100
	writeWait         time.Duration = time.Second * 2
)

type Session struct {
	id      string
	conn    *websocket.Conn
	mu      sync.Mutex
	lastSeq int
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:   id,
		conn: conn,
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

// LastSeq is the sequence number of the last game event written to this session.
func (s *Session) LastSeq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeq
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// WriteJSON writes msg to the spectator, retrying timeouts with a short
// backoff. Game events (seq > 0) already delivered to this session are
// skipped so a replay and a live broadcast never duplicate each other.
func (s *Session) WriteJSON(msg interface{}, seq int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq > 0 && seq <= s.lastSeq {
		return nil
	}

	var retries uint8

writeJsonLoop:
	for {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := s.conn.WriteJSON(msg)
		if err == nil {
			if seq > 0 {
				s.lastSeq = seq
			}
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				log.Printf("writing json failed to ws [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
				time.Sleep(time.Duration(retries) * backOffFactor)
				continue writeJsonLoop
			}
			log.Printf("max retries reached for writing to ws [%s]:%s", s.conn.RemoteAddr().String(), err)
			return NewConnErr(ConnLoopBreak, s.id, err)

		default:
			return NewConnErr(ConnLoopBreak, s.id, err)
		}
	}
}

// handleReadFromConnErr decides whether a failed read ends the session.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopRetry:
		if retries < maxWriteWsRetries {
			log.Printf("failed to read from ws conn [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries+1)
			time.Sleep(time.Duration(retries+1) * backOffFactor)
			return ConnLoopContinue
		}
		return ConnLoopBreak

	default:
		log.Printf("break ws conn loop [%s] due to: %s\n", s.conn.RemoteAddr().String(), err)
		return ConnLoopBreak
	}
}

// Close sends a normal closure frame and closes the connection.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match over")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	return s.conn.Close()
}
