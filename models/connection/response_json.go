package connection

import (
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
	GameUuid  string `json:"game_uuid"`
}

type RespShipPlaced struct {
	PlayerIndex int         `json:"player_index"`
	ShipType    mb.ShipType `json:"ship_type"`
	Row         string      `json:"row"`
	Column      int         `json:"column"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
}

func NewRespShipPlaced(playerIndex int, ship mb.Ship) RespShipPlaced {
	return RespShipPlaced{
		PlayerIndex: playerIndex,
		ShipType:    ship.Type,
		Row:         string(ship.Origin.Row),
		Column:      ship.Origin.Column,
		Width:       ship.Width,
		Height:      ship.Height,
	}
}

type RespTurnStart struct {
	PlayerName string `json:"player_name"`
}

// RespShot is sent for both hits and misses; the code tells them apart.
// PlayerIndex is the defender whose grid was fired at.
type RespShot struct {
	PlayerIndex int    `json:"player_index"`
	Position    string `json:"position"`
}

type RespEndGame struct {
	Winner string `json:"winner,omitempty"`
}

type RespReplayEnd struct {
	Events int `json:"events"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
