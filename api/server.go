package api

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	mc "github.com/saeidalz13/battleship-cli/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	SpectatorPath = "/battleship"
)

var defaultPort int = 9191

// event is a game event kept for replaying to late spectators.
type event struct {
	seq int
	msg interface{}
}

// Server streams a match to websocket spectators. It implements
// battleship.Observer; every callback becomes one broadcast message.
type Server struct {
	port           int
	stage          string
	allowedOrigins map[string]bool
	turnDelay      time.Duration
	upgrader       websocket.Upgrader
	httpServer     *http.Server
	listener       net.Listener
	SessionManager mc.SessionManager

	// mu guards the match history and serializes broadcasts with replays
	mu       sync.Mutex
	gameUuid string
	history  []event
	seq      int
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	server := Server{
		port:           defaultPort,
		stage:          StageDev,
		allowedOrigins: make(map[string]bool),
		SessionManager: mc.NewSpectatorSessionManager(),
		upgrader: websocket.Upgrader{
			// good average time since this is not a high-latency operation such as video streaming
			HandshakeTimeout: time.Second * 5,

			// spectator messages are small json documents
			ReadBufferSize:  2048,
			WriteBufferSize: 2048,
		},
	}

	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	server.upgrader.CheckOrigin = server.checkOrigin
	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port < 0 || port > 65535 {
			return fmt.Errorf("invalid spectator port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		for _, o := range origins {
			s.allowedOrigins[o] = true
		}
		return nil
	}
}

// WithTurnDelay paces the broadcast: the engine is held for d after each
// turn start so spectators can follow along.
func WithTurnDelay(d time.Duration) Option {
	return func(s *Server) error {
		if d < 0 {
			return fmt.Errorf("turn delay cannot be negative: %s", d)
		}
		s.turnDelay = d
		return nil
	}
}

// In dev every origin is accepted; prod only accepts the configured ones.
func (s *Server) checkOrigin(r *http.Request) bool {
	if s.stage == StageDev {
		return true
	}
	return s.allowedOrigins[r.Header.Get("Origin")]
}

func (s *Server) SetGameUuid(gameUuid string) {
	s.mu.Lock()
	s.gameUuid = gameUuid
	s.mu.Unlock()
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+SpectatorPath, s.HandleWs)
	return mux
}

// Start listens on the configured port and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return err
	}
	s.listener = ln
	s.httpServer = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: time.Second * 5}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Println("spectator server stopped:", err)
		}
	}()

	log.Printf("spectators can connect to ws://%s%s\n", ln.Addr().String(), SpectatorPath)
	return nil
}

func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.SessionManager.CloseAll()
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	log.Println("a new spectator connected\tRemote Addr: ", conn.RemoteAddr().String())
	go s.processSessionRequests(conn)
}
