package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	RenderModeText = "text"
	RenderModeTUI  = "tui"

	defaultLogFile     = "game.log"
	defaultPlayerNames = "player-1,player-2"
	defaultLinger      = time.Second * 30
)

type Config struct {
	Stage           string
	LogFile         string
	PlayerNames     []string
	RenderBoard     bool
	RenderMode      string
	SpectatorPort   int
	TurnDelay       time.Duration
	SpectatorLinger time.Duration
	AllowedOrigins  []string
	DatabaseUrl     string
}

// Load reads the configuration from the environment. Outside of prod a
// .env file in the working directory is loaded first, when there is one.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Stage:       valueOr(getenv("STAGE"), StageDev),
		LogFile:     valueOr(getenv("LOG_FILE"), defaultLogFile),
		RenderMode:  valueOr(getenv("RENDER_MODE"), RenderModeText),
		DatabaseUrl: getenv("DATABASE_URL"),
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}
	if cfg.RenderMode != RenderModeText && cfg.RenderMode != RenderModeTUI {
		return Config{}, fmt.Errorf("RENDER_MODE must be either text or tui, got: %s", cfg.RenderMode)
	}

	cfg.PlayerNames = splitList(valueOr(getenv("PLAYER_NAMES"), defaultPlayerNames))
	if len(cfg.PlayerNames) < 2 {
		return Config{}, fmt.Errorf("PLAYER_NAMES needs at least 2 names, got: %d", len(cfg.PlayerNames))
	}
	cfg.AllowedOrigins = splitList(getenv("ALLOWED_ORIGINS"))

	var err error
	if cfg.RenderBoard, err = strconv.ParseBool(valueOr(getenv("RENDER_BOARD"), "true")); err != nil {
		return Config{}, fmt.Errorf("RENDER_BOARD: %w", err)
	}
	if cfg.SpectatorPort, err = strconv.Atoi(valueOr(getenv("SPECTATOR_PORT"), "0")); err != nil {
		return Config{}, fmt.Errorf("SPECTATOR_PORT: %w", err)
	}
	if cfg.SpectatorPort < 0 || cfg.SpectatorPort > 65535 {
		return Config{}, fmt.Errorf("SPECTATOR_PORT out of range: %d", cfg.SpectatorPort)
	}
	if cfg.TurnDelay, err = parseDuration("TURN_DELAY", getenv("TURN_DELAY"), 0); err != nil {
		return Config{}, err
	}
	if cfg.SpectatorLinger, err = parseDuration("SPECTATOR_LINGER", getenv("SPECTATOR_LINGER"), defaultLinger); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) SpectatorEnabled() bool {
	return c.SpectatorPort > 0
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}

func parseDuration(name, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s cannot be negative: %s", name, d)
	}
	return d, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
