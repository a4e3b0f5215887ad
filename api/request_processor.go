package api

import (
	"log"

	"github.com/gorilla/websocket"
	mc "github.com/saeidalz13/battleship-cli/models/connection"
)

// processSessionRequests registers a spectator, replays the match so far
// and then serves replay requests until the connection goes away.
func (s *Server) processSessionRequests(conn *websocket.Conn) {
	session, err := s.openSession(conn)
	if err != nil {
		log.Println("failed to open spectator session:", err)
		_ = conn.Close()
		return
	}
	sessionId := session.Id()

	defer func() {
		s.SessionManager.TerminateSession(sessionId)
		_ = conn.Close()
	}()

sessionLoop:
	for {
		_, payload, err := s.SessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Spectators rarely talk; a read error means they left
			break sessionLoop
		}

		code, err := s.SessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewErrorMessage(mc.CodeSignalAbsent, "incoming req payload must contain 'code' field", "")
			if err := session.WriteJSON(msg, 0); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {
		case mc.CodeReplay:
			s.mu.Lock()
			err := s.replay(session, false)
			s.mu.Unlock()
			if err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewErrorMessage(mc.CodeInvalidSignal, "", "invalid code in the incoming payload")
			if err := session.WriteJSON(respInvalidSignal, 0); err != nil {
				break sessionLoop
			}
		}
	}
}

// openSession sends the session id and the history while holding the
// history lock, so no broadcast can slip between the replay and the
// session joining the live stream.
func (s *Server) openSession(conn *websocket.Conn) (*mc.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.SessionManager.GenerateNewSession(conn)

	resp := mc.NewMessage(mc.CodeSessionID, mc.RespSessionId{SessionID: session.Id(), GameUuid: s.gameUuid})
	if err := session.WriteJSON(resp, 0); err != nil {
		s.SessionManager.TerminateSession(session.Id())
		return nil, err
	}

	if err := s.replay(session, true); err != nil {
		s.SessionManager.TerminateSession(session.Id())
		return nil, err
	}
	return session, nil
}

// replay writes every recorded event followed by CodeReplayEnd. With
// track set, events advance the session's sequence so later broadcasts
// are not delivered twice. The caller holds s.mu.
func (s *Server) replay(session *mc.Session, track bool) error {
	for _, ev := range s.history {
		seq := 0
		if track {
			seq = ev.seq
		}
		if err := session.WriteJSON(ev.msg, seq); err != nil {
			return err
		}
	}

	end := mc.NewMessage(mc.CodeReplayEnd, mc.RespReplayEnd{Events: len(s.history)})
	return session.WriteJSON(end, 0)
}
