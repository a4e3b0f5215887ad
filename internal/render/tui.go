package render

import (
	"context"
	"fmt"
	"sync"

	gui "github.com/grupawp/warships-gui/v2"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const (
	tuiSize    = 10
	tuiLastRow = mb.FirstRow + tuiSize - 1

	leftBoardX  = 1
	rightBoardX = 50
	boardY      = 5
)

// tuiGrid mirrors one board of the terminal UI. The first index is the row
// letter, the second the column, both zero based.
type tuiGrid [tuiSize][tuiSize]gui.State

func newTuiGrid() tuiGrid {
	var g tuiGrid
	for i := range g {
		for j := range g[i] {
			g[i][j] = gui.Empty
		}
	}
	return g
}

func (g *tuiGrid) set(p mb.Position, state gui.State) bool {
	row, col := int(p.Row-mb.FirstRow), p.Column-1
	if p.Row < mb.FirstRow || row >= tuiSize || col < 0 || col >= tuiSize {
		return false
	}
	// a miss never hides an earlier hit
	if state == gui.Miss && g[row][col] == gui.Hit {
		return false
	}
	g[row][col] = state
	return true
}

func (g *tuiGrid) place(ship mb.Ship) {
	for i := 0; i < ship.Height; i++ {
		for j := 0; j < ship.Width; j++ {
			g.set(ship.Origin.Offset(i, j), gui.Ship)
		}
	}
}

// FitsTUI reports whether the match can be drawn by the terminal UI: two
// players on battle areas no larger than 10 by J.
func FitsTUI(players []*mb.Player) bool {
	if len(players) != 2 {
		return false
	}
	for _, p := range players {
		ba := p.BattleArea()
		if ba == nil || ba.Width() > tuiSize || ba.Height() > tuiLastRow {
			return false
		}
	}
	return true
}

// TUI is a battleship.Observer drawing both boards in a full screen
// terminal window.
type TUI struct {
	mu     sync.Mutex
	ui     *gui.GUI
	boards []*gui.Board
	grids  []tuiGrid
	status *gui.Text
}

var _ mb.Observer = (*TUI)(nil)

func NewTUI(players []*mb.Player) *TUI {
	t := &TUI{
		ui:     gui.NewGUI(false),
		boards: make([]*gui.Board, len(players)),
		grids:  make([]tuiGrid, len(players)),
		status: gui.NewText(leftBoardX, 1, "waiting for the first turn", nil),
	}
	t.ui.Draw(t.status)
	t.ui.Draw(gui.NewText(leftBoardX, 2, "Press Ctrl+C to exit", nil))

	for i, p := range players {
		t.grids[i] = newTuiGrid()
		x := leftBoardX
		if i == 1 {
			x = rightBoardX
		}
		t.ui.Draw(gui.NewText(x, boardY-1, p.Name(), nil))
		t.boards[i] = gui.NewBoard(x, boardY, nil)
		t.boards[i].SetStates(t.grids[i])
		t.ui.Draw(t.boards[i])
	}
	return t
}

// Run blocks until the window is closed or ctx is done.
func (t *TUI) Run(ctx context.Context) {
	t.ui.Start(nil)
}

func (t *TUI) OnShipPlaced(playerIndex int, ship mb.Ship) {
	t.update(playerIndex, func(g *tuiGrid) { g.place(ship) })
}

func (t *TUI) OnTurnStart(playerName string) {
	t.setStatus(playerName + " Turn")
}

func (t *TUI) OnHit(playerIndex int, position mb.Position) {
	t.update(playerIndex, func(g *tuiGrid) { g.set(position, gui.Hit) })
}

func (t *TUI) OnMiss(playerIndex int, position mb.Position) {
	t.update(playerIndex, func(g *tuiGrid) { g.set(position, gui.Miss) })
}

func (t *TUI) OnWin(playerName string) {
	t.setStatus(fmt.Sprintf("%s Wins!", playerName))
}

func (t *TUI) OnDraw() {
	t.setStatus("Game Ends in a Draw!")
}

func (t *TUI) update(playerIndex int, fn func(*tuiGrid)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if playerIndex < 0 || playerIndex >= len(t.grids) {
		return
	}
	fn(&t.grids[playerIndex])
	t.boards[playerIndex].SetStates(t.grids[playerIndex])
}

func (t *TUI) setStatus(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.SetText(text)
}
