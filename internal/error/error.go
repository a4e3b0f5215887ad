package error

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfBounds    = errors.New("ship placement out of bounds")
	ErrOverlap        = errors.New("ship overlap detected")
	ErrInvalidSetup   = errors.New("invalid game setup")
)

func ErrNoInput() error {
	return fmt.Errorf("%w: no input provided, please enter valid input", ErrMalformedInput)
}

func ErrLineCount(expected, got int) error {
	return fmt.Errorf("%w: expected %d lines of input, got %d", ErrMalformedInput, expected, got)
}

func ErrInvalidBattleArea(line string) error {
	return fmt.Errorf("%w: %q is not a valid battle area dimension (e.g. '5 E')", ErrMalformedInput, line)
}

func ErrInvalidShipCount(value string) error {
	return fmt.Errorf("%w: ship count must be a non-negative integer, got %q", ErrMalformedInput, value)
}

func ErrInvalidShipLine(lineNo int, reason string) error {
	return fmt.Errorf("%w: invalid ship line %d: %s", ErrMalformedInput, lineNo, reason)
}

func ErrInvalidShipType(shipType string) error {
	return fmt.Errorf("%w: unknown ship type %q, expected P or Q", ErrMalformedInput, shipType)
}

func ErrInvalidPosition(token string) error {
	return fmt.Errorf("%w: invalid position %q, expected format: A1, B10, etc", ErrMalformedInput, token)
}

func ErrInvalidShipSize(width, height int) error {
	return fmt.Errorf("%w: ship dimensions must be positive\twidth: %d\theight: %d", ErrMalformedInput, width, height)
}

func ErrPlacementOutOfBounds(position string) error {
	return fmt.Errorf("%w at %s", ErrOutOfBounds, position)
}

func ErrPlacementOverlap(position string) error {
	return fmt.Errorf("%w at %s", ErrOverlap, position)
}

func ErrNotEnoughPlayers(count int) error {
	return fmt.Errorf("%w: at least 2 players are required, got %d", ErrInvalidSetup, count)
}

func ErrDuplicatePlayerName(name string) error {
	return fmt.Errorf("%w: player name must be unique within a match, name: %s", ErrInvalidSetup, name)
}

func ErrBattleAreaNotSet(name string) error {
	return fmt.Errorf("%w: battle area is not set for player: %s", ErrInvalidSetup, name)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}
