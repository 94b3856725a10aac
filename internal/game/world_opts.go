package game

import "github.com/pixil98/go-adventure/internal/combat"

type WorldOpt func(*World)

// WithPlayerConfig overrides the default player limits.
func WithPlayerConfig(cfg PlayerConfig) WorldOpt {
	return func(w *World) {
		w.playerConfig = cfg
	}
}

// WithRoller replaces the random source used for combat rolls.
func WithRoller(roll combat.Roller) WorldOpt {
	return func(w *World) {
		w.roll = roll
	}
}
