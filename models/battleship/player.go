package battleship

type Player struct {
	name           string
	battleArea     *BattleArea
	shipCount      int
	firingSequence []Position
}

func NewPlayer(name string) *Player {
	return &Player{name: name}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) BattleArea() *BattleArea {
	return p.battleArea
}

func (p *Player) SetBattleArea(width int, height byte) {
	p.battleArea = NewBattleArea(width, height)
}

func (p *Player) PlaceShip(width, height int, origin Position, shipType ShipType) (Ship, error) {
	return p.battleArea.PlaceShip(width, height, origin, shipType)
}

func (p *Player) SetShipCount(count int) {
	p.shipCount = count
}

func (p *Player) ShipCount() int {
	return p.shipCount
}

// A player is active while at least one of their ships is afloat.
func (p *Player) IsActive() bool {
	return p.shipCount > 0
}

func (p *Player) SunkShip() {
	if p.shipCount > 0 {
		p.shipCount--
	}
}

func (p *Player) SetFiringSequence(sequence []Position) {
	p.firingSequence = make([]Position, len(sequence))
	copy(p.firingSequence, sequence)
}

func (p *Player) HasTargets() bool {
	return len(p.firingSequence) > 0
}

// NextTarget pops the head of the firing sequence.
func (p *Player) NextTarget() (Position, bool) {
	if len(p.firingSequence) == 0 {
		return Position{}, false
	}
	target := p.firingSequence[0]
	p.firingSequence = p.firingSequence[1:]
	return target, true
}

func (p *Player) PendingTargets() []Position {
	pending := make([]Position, len(p.firingSequence))
	copy(pending, p.firingSequence)
	return pending
}
