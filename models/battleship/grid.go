package battleship

import (
	"math"
	"strconv"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

const (
	FirstRow byte = 'A'

	// MaxColumn keeps every column representable in a packed grid key.
	MaxColumn = math.MaxInt32
)

// Position is a grid coordinate: a row letter and a 1-based column.
type Position struct {
	Row    byte `json:"row"`
	Column int  `json:"column"`
}

// Row letters are always stored upper-cased.
func NewPosition(row byte, column int) Position {
	return Position{Row: toUpper(row), Column: column}
}

// ParsePosition accepts tokens such as A1 or b10.
func ParsePosition(token string) (Position, error) {
	if len(token) < 2 || !isLetter(token[0]) {
		return Position{}, cerr.ErrInvalidPosition(token)
	}

	for i := 1; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return Position{}, cerr.ErrInvalidPosition(token)
		}
	}

	column, err := strconv.Atoi(token[1:])
	if err != nil || column > MaxColumn {
		return Position{}, cerr.ErrInvalidPosition(token)
	}
	return NewPosition(token[0], column), nil
}

func (p Position) String() string {
	return string(p.Row) + strconv.Itoa(p.Column)
}

// Offset returns the position rows letters down and cols columns right.
func (p Position) Offset(rows, cols int) Position {
	return Position{Row: p.Row + byte(rows), Column: p.Column + cols}
}

// packedPos is the grid key: row letter in the high bits, column in the low 32.
type packedPos int64

func (p Position) pack() packedPos {
	return packedPos(int64(p.Row)<<32 | int64(uint32(p.Column)))
}

func (pp packedPos) unpack() Position {
	return Position{Row: byte(pp >> 32), Column: int(int32(uint32(pp)))}
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// IsRowLetter reports whether b is an ASCII letter usable as a row bound.
func IsRowLetter(b byte) bool {
	return isLetter(b)
}
