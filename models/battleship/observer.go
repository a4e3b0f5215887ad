package battleship

// Observer receives one-way notifications from a running game. Calls are
// synchronous and happen after the engine has finished mutating state.
type Observer interface {
	OnShipPlaced(playerIndex int, ship Ship)
	OnTurnStart(playerName string)
	OnHit(playerIndex int, position Position)
	OnMiss(playerIndex int, position Position)
	OnWin(playerName string)
	OnDraw()
}

// NopObserver can be embedded by observers that only care about some events.
type NopObserver struct{}

func (NopObserver) OnShipPlaced(int, Ship) {}
func (NopObserver) OnTurnStart(string) {}
func (NopObserver) OnHit(int, Position) {}
func (NopObserver) OnMiss(int, Position) {}
func (NopObserver) OnWin(string) {}
func (NopObserver) OnDraw() {}

var _ Observer = NopObserver{}
