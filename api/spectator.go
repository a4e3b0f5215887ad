package api

import (
	"time"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
	mc "github.com/saeidalz13/battleship-cli/models/connection"
)

var _ mb.Observer = (*Server)(nil)

func publish[T any](s *Server, code uint8, payload T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	msg := mc.NewEvent(code, s.seq, payload)

	s.history = append(s.history, event{seq: s.seq, msg: msg})
	s.SessionManager.Broadcast(msg, s.seq)
}

func (s *Server) OnShipPlaced(playerIndex int, ship mb.Ship) {
	publish(s, mc.CodeShipPlaced, mc.NewRespShipPlaced(playerIndex, ship))
}

func (s *Server) OnTurnStart(playerName string) {
	publish(s, mc.CodeTurnStart, mc.RespTurnStart{PlayerName: playerName})
	if s.turnDelay > 0 {
		time.Sleep(s.turnDelay)
	}
}

func (s *Server) OnHit(playerIndex int, position mb.Position) {
	publish(s, mc.CodeHit, mc.RespShot{PlayerIndex: playerIndex, Position: position.String()})
}

func (s *Server) OnMiss(playerIndex int, position mb.Position) {
	publish(s, mc.CodeMiss, mc.RespShot{PlayerIndex: playerIndex, Position: position.String()})
}

func (s *Server) OnWin(playerName string) {
	publish(s, mc.CodeWin, mc.RespEndGame{Winner: playerName})
}

func (s *Server) OnDraw() {
	publish(s, mc.CodeDraw, mc.RespEndGame{})
}

// Events is the number of game events recorded so far.
func (s *Server) Events() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
