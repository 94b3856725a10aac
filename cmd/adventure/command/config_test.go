package command

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		config *Config
		expErr string
	}{
		"defaults are valid": {
			config: DefaultConfig(),
		},
		"bad log level": {
			config: &Config{LogLevel: "loud", Player: game.DefaultPlayerConfig()},
			expErr: `log_level "loud" is invalid`,
		},
		"bad player config": {
			config: &Config{LogLevel: "debug", Player: game.PlayerConfig{}},
			expErr: "player:",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expErr == "" {
				testutil.AssertEqual(t, "err", err, nil)
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestConfig_Level(t *testing.T) {
	tests := map[string]struct {
		level string
		exp   slog.Level
	}{
		"debug":        {level: "debug", exp: slog.LevelDebug},
		"upper case":   {level: "WARN", exp: slog.LevelWarn},
		"padded":       {level: " error ", exp: slog.LevelError},
		"default info": {level: "info", exp: slog.LevelInfo},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := &Config{LogLevel: tt.level}
			lvl, err := c.Level()
			testutil.AssertEqual(t, "err", err, nil)
			testutil.AssertEqual(t, "level", lvl, tt.exp)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tests := map[string]struct {
		contents  string
		expCap    int
		expHealth int
		expErr    string
	}{
		"partial file keeps defaults": {
			contents:  `{"player": {"capacity": 20}}`,
			expCap:    20,
			expHealth: 100,
		},
		"invalid values": {
			contents: `{"log_level": "chatty"}`,
			expErr:   "log_level",
		},
		"malformed json": {
			contents: `{"player":`,
			expErr:   "unmarshalling json",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.contents), 0o644); err != nil {
				t.Fatalf("writing config: %v", err)
			}

			cfg, err := LoadConfig(path)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			testutil.AssertEqual(t, "err", err, nil)
			testutil.AssertEqual(t, "capacity", cfg.Player.Capacity, tt.expCap)
			testutil.AssertEqual(t, "max health", cfg.Player.MaxHealth, tt.expHealth)
		})
	}
}

func TestLoadConfig_NoPath(t *testing.T) {
	cfg, err := LoadConfig("")
	testutil.AssertEqual(t, "err", err, nil)
	testutil.AssertEqual(t, "capacity", cfg.Player.Capacity, game.DefaultPlayerConfig().Capacity)
	testutil.AssertEqual(t, "log level", cfg.LogLevel, "info")
}
