package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/saeidalz13/battleship-cli/api"
	"github.com/saeidalz13/battleship-cli/db"
	"github.com/saeidalz13/battleship-cli/db/sqlc"
	"github.com/saeidalz13/battleship-cli/internal"
	"github.com/saeidalz13/battleship-cli/internal/config"
	"github.com/saeidalz13/battleship-cli/internal/logger"
	"github.com/saeidalz13/battleship-cli/internal/render"
	"github.com/saeidalz13/battleship-cli/internal/setup"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const shutdownTimeout = time.Second * 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	// stderr output would tear the full screen board apart
	l, closer, err := logger.New(cfg.LogFile, !wantsTUI(cfg))
	if err != nil {
		log.Fatalln(err)
	}
	log.SetOutput(l.Writer())
	os.Exit(run(cfg, l, closer))
}

func wantsTUI(cfg config.Config) bool {
	return cfg.RenderBoard && cfg.RenderMode == config.RenderModeTUI && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func run(cfg config.Config, l *log.Logger, closer io.Closer) int {
	defer closer.Close()

	l.Println("Enter the battle area, ship count, ships and one firing sequence per player:")
	parsed, err := setup.Parse(os.Stdin, len(cfg.PlayerNames))
	if err != nil {
		l.Println(err)
		return 1
	}
	players, err := setup.Configure(parsed, cfg.PlayerNames)
	if err != nil {
		l.Println(err)
		return 1
	}
	for _, p := range players {
		ba := p.BattleArea()
		l.Printf("%s: battle area %d %c, %d ships, ship cells %v, targets %v",
			p.Name(), ba.Width(), ba.Height(), p.ShipCount(), ba.OccupiedPositions(), p.PendingTargets())
	}

	var observers []mb.Observer
	var tuiDone chan struct{}
	switch {
	case wantsTUI(cfg) && render.FitsTUI(players):
		tui := render.NewTUI(players)
		observers = append(observers, tui)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		tuiDone = make(chan struct{})
		go func() {
			tui.Run(ctx)
			close(tuiDone)
		}()

	case cfg.RenderBoard:
		if cfg.RenderMode == config.RenderModeTUI {
			l.Println("terminal UI needs two players, a board of at most 10 J and a terminal; printing boards instead")
		}
		observers = append(observers, render.NewRenderer(os.Stdout, players))
	}

	var spectators *api.Server
	if cfg.SpectatorEnabled() {
		spectators = api.NewServer(
			api.WithPort(cfg.SpectatorPort),
			api.WithStage(cfg.Stage),
			api.WithAllowedOrigins(cfg.AllowedOrigins...),
			api.WithTurnDelay(cfg.TurnDelay),
		)
		if err := spectators.Start(); err != nil {
			l.Println("spectator server disabled:", err)
			spectators = nil
		} else {
			observers = append(observers, spectators)
		}
	}

	game, err := mb.NewGame(players, mb.WithLogger(l), mb.WithObservers(observers...))
	if err != nil {
		l.Println(err)
		return 1
	}
	if spectators != nil {
		spectators.SetGameUuid(game.Uuid())
	}

	res := game.Start()
	l.Printf("game %s finished as %s after %d rounds and %d shots", game.ShortUuid(), res.State, res.Rounds, res.Shots)

	if cfg.AnalyticsEnabled() {
		recordAnalytics(cfg.DatabaseUrl, l, res)
	}

	if tuiDone != nil {
		<-tuiDone
	}

	if spectators != nil {
		if cfg.SpectatorLinger > 0 {
			l.Printf("spectator server stays up for %s", cfg.SpectatorLinger)
			time.Sleep(cfg.SpectatorLinger)
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := spectators.Shutdown(ctx); err != nil {
			l.Println("spectator server shutdown:", err)
		}
	}
	return 0
}

// Analytics failures never change the outcome of the run.
func recordAnalytics(psqlUrl string, l *log.Logger, res mb.Result) {
	serverIpNet, err := internal.ServerIpNet()
	if err != nil {
		l.Println("analytics skipped:", err)
		return
	}

	conn, err := db.Connect(psqlUrl, l)
	if err != nil {
		l.Println("analytics skipped:", err)
		return
	}
	dm := sqlc.NewDbManager(conn)
	defer dm.Close()

	if err := dm.Analytics.RecordMatch(context.Background(), serverIpNet, res); err != nil {
		l.Println("failed to record match analytics:", err)
	}
}
