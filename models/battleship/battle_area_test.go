package battleship

import (
	"errors"
	"math"
	"testing"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Position
		wantErr  bool
	}{
		{name: "single digit", token: "A1", expected: Position{Row: 'A', Column: 1}},
		{name: "two digits", token: "B10", expected: Position{Row: 'B', Column: 10}},
		{name: "lower case row", token: "e5", expected: Position{Row: 'E', Column: 5}},
		{name: "digit first", token: "1A", wantErr: true},
		{name: "letter only", token: "A", wantErr: true},
		{name: "mixed column", token: "A1B", wantErr: true},
		{name: "empty", token: "", wantErr: true},
		{name: "non ascii letter", token: "é1", wantErr: true},
		{name: "column past packed range", token: "A4294967297", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParsePosition(test.token)
			if test.wantErr {
				if !errors.Is(err, cerr.ErrMalformedInput) {
					t.Fatalf("expected malformed input error\tgot: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.expected {
				t.Fatalf("expected position: %+v\tgot: %+v", test.expected, got)
			}
		})
	}
}

func TestPositionPacking(t *testing.T) {
	for _, p := range []Position{{'A', 1}, {'Z', 26}, {'E', 0}, {'C', 1 << 20}} {
		if got := p.pack().unpack(); got != p {
			t.Fatalf("expected: %s\tgot: %s", p, got)
		}
	}
	if NewPosition('a', 1).pack() != NewPosition('A', 1).pack() {
		t.Fatal("row letters must be case normalized before lookup")
	}
}

func TestPlaceShip(t *testing.T) {
	ba := NewBattleArea(5, 'E')

	ship, err := ba.PlaceShip(2, 3, NewPosition('B', 2), ShipTypeQ)
	if err != nil {
		t.Fatal(err)
	}
	if ship.Size() != 6 {
		t.Fatalf("expected size: %d\tgot: %d", 6, ship.Size())
	}
	if ba.OccupiedCells() != 6 {
		t.Fatalf("expected occupied cells: %d\tgot: %d", 6, ba.OccupiedCells())
	}

	expected := []Position{{'B', 2}, {'B', 3}, {'C', 2}, {'C', 3}, {'D', 2}, {'D', 3}}
	got := ba.OccupiedPositions()
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected cell %d at %s\tgot: %s", i, expected[i], got[i])
		}
		cell, ok := ba.CellAt(expected[i])
		if !ok {
			t.Fatalf("no cell at %s", expected[i])
		}
		if cell.Health() != ShipTypeQ.CellHealth() {
			t.Fatalf("expected health: %d\tgot: %d", ShipTypeQ.CellHealth(), cell.Health())
		}
	}
}

func TestPlaceShipErrors(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		origin Position
		target error
	}{
		{name: "row beyond height", width: 1, height: 1, origin: NewPosition('F', 1), target: cerr.ErrOutOfBounds},
		{name: "column beyond width", width: 1, height: 1, origin: NewPosition('A', 6), target: cerr.ErrOutOfBounds},
		{name: "extends past width", width: 3, height: 1, origin: NewPosition('A', 4), target: cerr.ErrOutOfBounds},
		{name: "extends past height", width: 1, height: 2, origin: NewPosition('E', 1), target: cerr.ErrOutOfBounds},
		{name: "column zero", width: 1, height: 1, origin: NewPosition('A', 0), target: cerr.ErrOutOfBounds},
		{name: "overlaps existing", width: 2, height: 2, origin: NewPosition('A', 1), target: cerr.ErrOverlap},
		{name: "zero width", width: 0, height: 1, origin: NewPosition('D', 1), target: cerr.ErrMalformedInput},
		{name: "huge ship", width: 1 << 30, height: 1 << 30, origin: NewPosition('A', 1), target: cerr.ErrOutOfBounds},
		{name: "max int width", width: math.MaxInt, height: 1, origin: NewPosition('C', 3), target: cerr.ErrOutOfBounds},
		{name: "height wraps a byte", width: 1, height: 256, origin: NewPosition('A', 1), target: cerr.ErrOutOfBounds},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ba := NewBattleArea(5, 'E')
			if _, err := ba.PlaceShip(1, 1, NewPosition('B', 2), ShipTypeP); err != nil {
				t.Fatal(err)
			}

			_, err := ba.PlaceShip(test.width, test.height, test.origin, ShipTypeP)
			if !errors.Is(err, test.target) {
				t.Fatalf("expected error: %v\tgot: %v", test.target, err)
			}

			// a failed placement must not leave partial cells behind
			if ba.OccupiedCells() != 1 {
				t.Fatalf("expected occupied cells: %d\tgot: %d", 1, ba.OccupiedCells())
			}
		})
	}
}

func TestOverlapRegardlessOfOrder(t *testing.T) {
	orders := [][]Position{
		{NewPosition('A', 1), NewPosition('C', 3), NewPosition('B', 2)},
		{NewPosition('C', 3), NewPosition('B', 2), NewPosition('A', 1)},
	}

	for _, order := range orders {
		ba := NewBattleArea(5, 'E')
		for _, origin := range order {
			if _, err := ba.PlaceShip(1, 1, origin, ShipTypeP); err != nil {
				t.Fatal(err)
			}
		}
		// 3x3 from A1 covers every placed ship
		if _, err := ba.PlaceShip(3, 3, NewPosition('A', 1), ShipTypeP); !errors.Is(err, cerr.ErrOverlap) {
			t.Fatalf("expected overlap\tgot: %v", err)
		}
	}
}

func TestIsOutOfBounds(t *testing.T) {
	ba := NewBattleArea(5, 'E')
	for row := byte('@'); row <= 'G'; row++ {
		for col := -1; col <= 7; col++ {
			p := Position{Row: row, Column: col}
			inside := row >= 'A' && row <= 'E' && col >= 1 && col <= 5
			if ba.IsOutOfBounds(p) == inside {
				t.Fatalf("bounds check wrong for %s\tinside: %t", p, inside)
			}
		}
	}
}

func TestRecordHitDestroysShipAfterEveryCell(t *testing.T) {
	tests := []struct {
		name     string
		shipType ShipType
		width    int
		height   int
	}{
		{name: "P 1x1", shipType: ShipTypeP, width: 1, height: 1},
		{name: "P 2x2", shipType: ShipTypeP, width: 2, height: 2},
		{name: "Q 1x1", shipType: ShipTypeQ, width: 1, height: 1},
		{name: "Q 3x1", shipType: ShipTypeQ, width: 3, height: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ba := NewBattleArea(5, 'E')
			origin := NewPosition('A', 1)
			if _, err := ba.PlaceShip(test.width, test.height, origin, test.shipType); err != nil {
				t.Fatal(err)
			}

			totalHits := test.width * test.height * test.shipType.CellHealth()
			hits := 0
			for i := 0; i < test.height; i++ {
				for j := 0; j < test.width; j++ {
					p := origin.Offset(i, j)
					for h := 0; h < test.shipType.CellHealth(); h++ {
						res, ok := ba.RecordHit(p)
						if !ok {
							t.Fatalf("expected a hit at %s", p)
						}
						hits++
						if res.ShipDestroyed != (hits == totalHits) {
							t.Fatalf("ship destroyed: %t after %d of %d hits", res.ShipDestroyed, hits, totalHits)
						}
					}
					if _, ok := ba.CellAt(p); ok {
						t.Fatalf("destroyed cell %s still on the grid", p)
					}
				}
			}

			if ba.OccupiedCells() != 0 {
				t.Fatalf("expected empty grid\tgot: %d cells", ba.OccupiedCells())
			}
		})
	}
}

func TestRecordHitMiss(t *testing.T) {
	ba := NewBattleArea(5, 'E')
	if _, err := ba.PlaceShip(1, 1, NewPosition('A', 1), ShipTypeP); err != nil {
		t.Fatal(err)
	}

	for _, p := range []Position{NewPosition('B', 1), NewPosition('Z', 9), NewPosition('A', 0)} {
		if _, hit := ba.RecordHit(p); hit {
			t.Fatalf("expected a miss at %s", p)
		}
	}

	// a destroyed cell is empty water afterwards
	if _, hit := ba.RecordHit(NewPosition('a', 1)); !hit {
		t.Fatal("expected a hit at A1")
	}
	if _, hit := ba.RecordHit(NewPosition('A', 1)); hit {
		t.Fatal("expected a miss on a destroyed cell")
	}
}

func TestOffGridShotNeverAliasesACell(t *testing.T) {
	ba := NewBattleArea(5, 'E')
	if _, err := ba.PlaceShip(1, 1, NewPosition('A', 1), ShipTypeP); err != nil {
		t.Fatal(err)
	}

	// same low 32 bits as A1
	aliased := Position{Row: 'A', Column: 1<<32 + 1}
	if _, ok := ba.CellAt(aliased); ok {
		t.Fatalf("expected no cell at %s", aliased)
	}
	if _, hit := ba.RecordHit(aliased); hit {
		t.Fatalf("expected a miss at %s", aliased)
	}
	if ba.OccupiedCells() != 1 {
		t.Fatalf("expected occupied cells: %d\tgot: %d", 1, ba.OccupiedCells())
	}
}

func TestParseShipType(t *testing.T) {
	for tag, expected := range map[string]ShipType{"P": ShipTypeP, "q": ShipTypeQ} {
		got, err := ParseShipType(tag)
		if err != nil {
			t.Fatal(err)
		}
		if got != expected {
			t.Fatalf("expected: %s\tgot: %s", expected, got)
		}
	}
	if _, err := ParseShipType("X"); !errors.Is(err, cerr.ErrMalformedInput) {
		t.Fatalf("expected malformed input\tgot: %v", err)
	}
}
