package connection

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

var errSignalAbsent = errors.New("request has no code field")

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	Broadcast(msg interface{}, seq int) int
	ReadFromSessionConn(session *Session) (int, []byte, error)
	FetchCodeFromMsg(payload []byte) (uint8, error)
	Count() int
	CloseAll()
}

type SpectatorSessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSpectatorSessionManager() *SpectatorSessionManager {
	initMapSize := 10

	return &SpectatorSessionManager{
		sessions: make(map[string]*Session, initMapSize),
	}
}

var _ SessionManager = (*SpectatorSessionManager)(nil)

func (ssm *SpectatorSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	ssm.mu.Lock()
	ssm.sessions[sessionId] = session
	ssm.mu.Unlock()

	return session
}

func (ssm *SpectatorSessionManager) FindSession(sessionId string) (*Session, error) {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()

	session, prs := ssm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (ssm *SpectatorSessionManager) TerminateSession(sessionId string) {
	ssm.mu.Lock()
	delete(ssm.sessions, sessionId)
	ssm.mu.Unlock()
}

func (ssm *SpectatorSessionManager) Count() int {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()
	return len(ssm.sessions)
}

func (ssm *SpectatorSessionManager) snapshot() []*Session {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()

	sessions := make([]*Session, 0, len(ssm.sessions))
	for _, s := range ssm.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

// Broadcast writes msg to every session and drops the ones that fail.
// It returns how many sessions received the message.
func (ssm *SpectatorSessionManager) Broadcast(msg interface{}, seq int) int {
	delivered := 0
	for _, session := range ssm.snapshot() {
		if err := session.WriteJSON(msg, seq); err != nil {
			log.Printf("dropping spectator session %s: %v", session.id, err)
			ssm.TerminateSession(session.id)
			_ = session.conn.Close()
			continue
		}
		delivered++
	}
	return delivered
}

func (ssm *SpectatorSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		default:
			return -1, []byte{}, err
		}
	}
}

func (ssm *SpectatorSessionManager) FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}
	if signal.Code == nil {
		return randomInvalidCode, errSignalAbsent
	}

	return *signal.Code, nil
}

func (ssm *SpectatorSessionManager) CloseAll() {
	for _, session := range ssm.snapshot() {
		ssm.TerminateSession(session.id)
		_ = session.Close()
	}
}
