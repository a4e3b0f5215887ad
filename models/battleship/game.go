package battleship

import (
	"io"
	"log"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-cli/internal/error"
)

type GameState uint8

const (
	GameStateSetup GameState = iota
	GameStateRunning
	GameStateWon
	GameStateDrawn
)

func (s GameState) String() string {
	switch s {
	case GameStateSetup:
		return "setup"
	case GameStateRunning:
		return "running"
	case GameStateWon:
		return "won"
	case GameStateDrawn:
		return "drawn"
	}
	return "unknown"
}

// shortUuidLen is how much of the match uuid appears in log lines.
const shortUuidLen = 8

type Result struct {
	GameUuid string
	State    GameState
	Winner   string
	Rounds   int
	Shots    int
}

type Game struct {
	uuid      string
	state     GameState
	players   []*Player
	winner    *Player
	rounds    int
	shots     int
	observers []Observer
	logger    *log.Logger
}

type Option func(*Game) error

func NewGame(players []*Player, optFuncs ...Option) (*Game, error) {
	if len(players) < 2 {
		return nil, cerr.ErrNotEnoughPlayers(len(players))
	}

	names := make(map[string]struct{}, len(players))
	for _, p := range players {
		if p.battleArea == nil {
			return nil, cerr.ErrBattleAreaNotSet(p.name)
		}
		if _, prs := names[p.name]; prs {
			return nil, cerr.ErrDuplicatePlayerName(p.name)
		}
		names[p.name] = struct{}{}
	}

	game := &Game{
		uuid:    uuid.NewString(),
		state:   GameStateSetup,
		players: players,
		logger:  log.New(io.Discard, "", 0),
	}

	for _, opt := range optFuncs {
		if err := opt(game); err != nil {
			return nil, err
		}
	}
	return game, nil
}

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) error {
		if logger != nil {
			g.logger = logger
		}
		return nil
	}
}

func WithObservers(observers ...Observer) Option {
	return func(g *Game) error {
		for _, o := range observers {
			if o != nil {
				g.observers = append(g.observers, o)
			}
		}
		return nil
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) ShortUuid() string {
	return g.uuid[:shortUuidLen]
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Players() []*Player {
	return g.players
}

// Winner is nil unless the game ended in GameStateWon.
func (g *Game) Winner() *Player {
	return g.winner
}

// ActivePlayers returns the players with ships left, in their original order.
func (g *Game) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// NextPlayer searches active circularly, starting just after index, for a
// player that still has ships. It never returns the player at index.
func NextPlayer(active []*Player, index int) *Player {
	if index < 0 || index >= len(active) {
		return nil
	}

	start := (index + 1) % len(active)
	for start != index {
		if active[start].IsActive() {
			return active[start]
		}
		start = (start + 1) % len(active)
	}
	return nil
}

// Start runs the match to completion. Calling it again on a finished game
// returns the stored result.
func (g *Game) Start() Result {
	if g.state == GameStateSetup {
		g.run()
	}
	return g.result()
}

func (g *Game) run() {
	g.state = GameStateRunning
	g.logger.Printf("game %s started with %d players", g.ShortUuid(), len(g.players))

	for i, p := range g.players {
		for _, ship := range p.battleArea.Ships() {
			g.notify(func(o Observer) { o.OnShipPlaced(i, ship) })
		}
	}

	active := g.ActivePlayers()
	for g.isOn(active) {
		g.rounds++
		g.playRound(active)
		active = g.ActivePlayers()
	}

	if len(active) == 1 {
		g.state = GameStateWon
		g.winner = active[0]
		g.logger.Printf("%s wins the game!", g.winner.name)
		g.notify(func(o Observer) { o.OnWin(g.winner.name) })
		return
	}

	g.state = GameStateDrawn
	g.logger.Println("Game ends in a draw.")
	g.notify(func(o Observer) { o.OnDraw() })
}

// The match continues while two or more players are active and at least
// one of them still has targets queued.
func (g *Game) isOn(active []*Player) bool {
	if len(active) < 2 {
		return false
	}
	for _, p := range active {
		if p.HasTargets() {
			return true
		}
	}
	return false
}

// playRound gives every player of the round snapshot one turn. The
// snapshot is not updated as ships sink: a player eliminated during the
// round still fires its turn, but can no longer be targeted.
func (g *Game) playRound(active []*Player) {
	for i, p := range active {
		if !p.HasTargets() {
			g.logger.Printf("%s has no more missiles left to launch", p.name)
			continue
		}

		g.notify(func(o Observer) { o.OnTurnStart(p.name) })
		if !g.processTurn(p, active, i) {
			return
		}
	}
}

// processTurn fires until a miss or an empty firing sequence. It returns
// false when nobody is left to target, which ends the round at once.
func (g *Game) processTurn(p *Player, active []*Player, index int) bool {
	for p.HasTargets() {
		defender := NextPlayer(active, index)
		if defender == nil {
			return false
		}

		target, _ := p.NextTarget()
		if !g.fireMissile(p, target, defender) {
			break
		}
	}
	return true
}

// fireMissile resolves one shot and reports whether it hit.
func (g *Game) fireMissile(attacker *Player, target Position, defender *Player) bool {
	g.shots++
	defenderIdx := g.playerIndex(defender)

	res, hit := defender.battleArea.RecordHit(target)
	if !hit {
		g.logger.Printf("%s fires a missile at %s which missed.", attacker.name, target)
		g.notify(func(o Observer) { o.OnMiss(defenderIdx, target) })
		return false
	}

	g.logger.Printf("%s fires a missile at %s which is a hit.", attacker.name, target)
	if res.ShipDestroyed {
		defender.SunkShip()
		g.logger.Printf("%s destroyed a ship!", attacker.name)
	}
	g.notify(func(o Observer) { o.OnHit(defenderIdx, target) })
	return true
}

func (g *Game) playerIndex(p *Player) int {
	for i, player := range g.players {
		if player == p {
			return i
		}
	}
	return -1
}

func (g *Game) notify(fn func(Observer)) {
	for _, o := range g.observers {
		fn(o)
	}
}

func (g *Game) result() Result {
	res := Result{
		GameUuid: g.uuid,
		State:    g.state,
		Rounds:   g.rounds,
		Shots:    g.shots,
	}
	if g.winner != nil {
		res.Winner = g.winner.name
	}
	return res
}
