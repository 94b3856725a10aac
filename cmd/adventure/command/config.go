package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

type Config struct {
	LogLevel string            `json:"log_level"`
	Player   game.PlayerConfig `json:"player"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Player:   game.DefaultPlayerConfig(),
	}
}

// LoadConfig reads a config file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	err := storage.ReadJSON(path, c)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.Level(); err != nil {
		el.Add(err)
	}

	err := c.Player.Validate()
	if err != nil {
		el.Add(fmt.Errorf("player: %w", err))
	}

	return el.Err()
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return lvl, fmt.Errorf("log_level %q is invalid", c.LogLevel)
	}
	return lvl, nil
}
