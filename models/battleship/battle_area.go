package battleship

import (
	"fmt"
	"sort"

	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

const gridSizeHint uint32 = 32

// HitResult describes a shot that landed on a ship cell.
type HitResult struct {
	Ship          Ship
	CellDestroyed bool
	ShipDestroyed bool
}

// BattleArea owns a player's ships. Ships and cells are kept in arenas;
// the grid maps a packed position to the index of the occupying cell.
type BattleArea struct {
	width  int
	height byte
	grid   *swiss.Map[packedPos, int]
	ships  []Ship
	cells  []ShipCell
}

func NewBattleArea(width int, height byte) *BattleArea {
	return &BattleArea{
		width:  width,
		height: toUpper(height),
		grid:   swiss.NewMap[packedPos, int](gridSizeHint),
	}
}

func (ba *BattleArea) Width() int {
	return ba.width
}

func (ba *BattleArea) Height() byte {
	return ba.height
}

// Rows is the number of row letters, A through Height inclusive.
func (ba *BattleArea) Rows() int {
	return int(ba.height-FirstRow) + 1
}

func (ba *BattleArea) IsOutOfBounds(p Position) bool {
	return p.Row < FirstRow || p.Row > ba.height || p.Column < 1 || p.Column > ba.width
}

// PlaceShip puts a width x height ship with its top-left corner at origin.
// All target cells are checked before the grid is touched, so a failed
// placement leaves the area unchanged.
func (ba *BattleArea) PlaceShip(width, height int, origin Position, shipType ShipType) (Ship, error) {
	if width < 1 || height < 1 {
		return Ship{}, cerr.ErrInvalidShipSize(width, height)
	}
	origin = NewPosition(origin.Row, origin.Column)
	if ba.IsOutOfBounds(origin) {
		return Ship{}, cerr.ErrPlacementOutOfBounds(origin.String())
	}

	// the far corner must fit before any cell is enumerated
	if width > ba.width-origin.Column+1 || height > ba.Rows()-int(origin.Row-FirstRow) {
		return Ship{}, cerr.ErrPlacementOutOfBounds(fmt.Sprintf("%s for a %dx%d ship", origin, width, height))
	}

	targets := make([]Position, 0, width*height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			p := origin.Offset(i, j)
			if ba.grid.Has(p.pack()) {
				return Ship{}, cerr.ErrPlacementOverlap(p.String())
			}
			targets = append(targets, p)
		}
	}

	shipIdx := len(ba.ships)
	ba.ships = append(ba.ships, newShip(shipType, origin, width, height))

	health := shipType.CellHealth()
	for _, p := range targets {
		ba.cells = append(ba.cells, ShipCell{ship: shipIdx, health: health, position: p})
		ba.grid.Put(p.pack(), len(ba.cells)-1)
	}

	return ba.ships[shipIdx], nil
}

// CellAt returns the live cell at p, if any.
func (ba *BattleArea) CellAt(p Position) (ShipCell, bool) {
	p = NewPosition(p.Row, p.Column)
	if ba.IsOutOfBounds(p) {
		return ShipCell{}, false
	}
	idx, ok := ba.grid.Get(p.pack())
	if !ok {
		return ShipCell{}, false
	}
	return ba.cells[idx], true
}

// RecordHit resolves a shot at p. An empty or off-grid position is a miss.
// This is the only place a destroyed cell leaves the grid.
func (ba *BattleArea) RecordHit(p Position) (HitResult, bool) {
	p = NewPosition(p.Row, p.Column)
	if ba.IsOutOfBounds(p) {
		return HitResult{}, false
	}
	key := p.pack()
	idx, ok := ba.grid.Get(key)
	if !ok {
		return HitResult{}, false
	}

	cell := &ba.cells[idx]
	ship := &ba.ships[cell.ship]

	var res HitResult
	if cell.recordHit() {
		ba.grid.Delete(key)
		ship.reduceHealth()
		res.CellDestroyed = true
		res.ShipDestroyed = ship.IsDestroyed()
	}
	res.Ship = *ship
	return res, true
}

// Ships returns a copy of every ship placed, in placement order.
func (ba *BattleArea) Ships() []Ship {
	ships := make([]Ship, len(ba.ships))
	copy(ships, ba.ships)
	return ships
}

func (ba *BattleArea) OccupiedCells() int {
	return ba.grid.Count()
}

// OccupiedPositions lists the live cells sorted by row, then column.
func (ba *BattleArea) OccupiedPositions() []Position {
	positions := make([]Position, 0, ba.grid.Count())
	ba.grid.Iter(func(k packedPos, _ int) bool {
		positions = append(positions, k.unpack())
		return false
	})

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Column < positions[j].Column
	})
	return positions
}
