// Package render prints a match to a terminal as it is played.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const (
	MarkEmpty = '.'
	MarkShipP = 'S'
	MarkShipQ = 'Q'
	MarkHit   = 'X'
	MarkMiss  = 'O'
)

type board struct {
	name   string
	width  int
	height byte
	marks  map[mb.Position]byte
}

// Renderer is a battleship.Observer that announces turns and results and
// prints every board once the match ends.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	boards []*board
}

var _ mb.Observer = (*Renderer)(nil)

func NewRenderer(out io.Writer, players []*mb.Player) *Renderer {
	r := &Renderer{out: out, boards: make([]*board, len(players))}
	for i, p := range players {
		b := &board{name: p.Name(), marks: make(map[mb.Position]byte)}
		if ba := p.BattleArea(); ba != nil {
			b.width = ba.Width()
			b.height = ba.Height()
		}
		r.boards[i] = b
	}
	return r
}

func (r *Renderer) OnShipPlaced(playerIndex int, ship mb.Ship) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.board(playerIndex)
	if b == nil {
		return
	}
	mark := byte(MarkShipP)
	if ship.Type == mb.ShipTypeQ {
		mark = MarkShipQ
	}
	for i := 0; i < ship.Height; i++ {
		for j := 0; j < ship.Width; j++ {
			b.marks[ship.Origin.Offset(i, j)] = mark
		}
	}
}

func (r *Renderer) OnTurnStart(playerName string) {
	r.println(playerName + " Turn")
}

func (r *Renderer) OnHit(playerIndex int, position mb.Position) {
	r.mark(playerIndex, position, MarkHit)
}

// A miss never overwrites an earlier hit on the same cell.
func (r *Renderer) OnMiss(playerIndex int, position mb.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b := r.board(playerIndex); b != nil && b.marks[position] != MarkHit {
		b.marks[position] = MarkMiss
	}
}

func (r *Renderer) OnWin(playerName string) {
	r.println(playerName + " Wins!")
	r.printBoards()
}

func (r *Renderer) OnDraw() {
	r.println("Game Ends in a Draw!")
	r.printBoards()
}

func (r *Renderer) board(playerIndex int) *board {
	if playerIndex < 0 || playerIndex >= len(r.boards) {
		return nil
	}
	return r.boards[playerIndex]
}

func (r *Renderer) mark(playerIndex int, position mb.Position, mark byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b := r.board(playerIndex); b != nil {
		b.marks[position] = mark
	}
}

func (r *Renderer) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, line)
}

func (r *Renderer) printBoards() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.boards {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, b.name)
		b.writeTo(r.out)
	}
}

func (b *board) writeTo(out io.Writer) {
	tw := tabwriter.NewWriter(out, 2, 0, 1, ' ', 0)

	header := make([]string, 0, b.width+1)
	header = append(header, "")
	for col := 1; col <= b.width; col++ {
		header = append(header, strconv.Itoa(col))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for row := mb.FirstRow; row <= b.height; row++ {
		cells := make([]string, 0, b.width+1)
		cells = append(cells, string(row))
		for col := 1; col <= b.width; col++ {
			mark, ok := b.marks[mb.NewPosition(row, col)]
			if !ok {
				mark = MarkEmpty
			}
			cells = append(cells, string(mark))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}
