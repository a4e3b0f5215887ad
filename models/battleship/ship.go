package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

type ShipType string

const (
	ShipTypeP ShipType = "P"
	ShipTypeQ ShipType = "Q"
)

const (
	cellHealthP = 1
	cellHealthQ = 2
)

func ParseShipType(tag string) (ShipType, error) {
	switch ShipType(strings.ToUpper(tag)) {
	case ShipTypeP:
		return ShipTypeP, nil
	case ShipTypeQ:
		return ShipTypeQ, nil
	}
	return "", cerr.ErrInvalidShipType(tag)
}

// CellHealth is the number of hits each cell of this type absorbs.
func (st ShipType) CellHealth() int {
	if st == ShipTypeQ {
		return cellHealthQ
	}
	return cellHealthP
}

type Ship struct {
	Type   ShipType `json:"ship_type"`
	Origin Position `json:"origin"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	size   int
}

func newShip(shipType ShipType, origin Position, width, height int) Ship {
	return Ship{
		Type:   shipType,
		Origin: origin,
		Width:  width,
		Height: height,
		size:   width * height,
	}
}

// Size is the number of cells of the ship not yet destroyed.
func (sh *Ship) Size() int {
	return sh.size
}

func (sh *Ship) reduceHealth() {
	if sh.size > 0 {
		sh.size--
	}
}

func (sh *Ship) IsDestroyed() bool {
	return sh.size == 0
}

// ShipCell is one grid-addressable part of a ship. It refers to its ship
// by index into the owning BattleArea's ship arena.
type ShipCell struct {
	ship     int
	health   int
	position Position
}

func (c *ShipCell) Health() int {
	return c.health
}

func (c *ShipCell) Position() Position {
	return c.position
}

// recordHit takes one point of health and reports whether the cell is gone.
func (c *ShipCell) recordHit() bool {
	if c.health > 0 {
		c.health--
	}
	return c.health == 0
}
