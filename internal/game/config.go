package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// PlayerConfig holds the tunable limits of a player.
type PlayerConfig struct {
	Capacity       int `json:"capacity"`
	MaxHealth      int `json:"max_health"`
	AttackPower    int `json:"attack_power"`
	CriticalChance int `json:"critical_chance"`
}

// DefaultPlayerConfig returns the standard player limits.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Capacity:       13,
		MaxHealth:      100,
		AttackPower:    10,
		CriticalChance: 15,
	}
}

// Validate satisfies storage.ValidatingSpec.
func (c *PlayerConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Capacity < 0 {
		el.Add(fmt.Errorf("capacity must not be negative"))
	}
	if c.MaxHealth <= 0 {
		el.Add(fmt.Errorf("max_health must be positive"))
	}
	if c.AttackPower < 0 {
		el.Add(fmt.Errorf("attack_power must not be negative"))
	}
	if c.CriticalChance < 0 || c.CriticalChance > 100 {
		el.Add(fmt.Errorf("critical_chance must be between 0 and 100"))
	}

	return el.Err()
}
