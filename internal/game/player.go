package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/combat"
)

const DefaultPlayerName = "Player"

// Rank is a title earned from the player's score.
type Rank string

const (
	RankBeginner           Rank = "Beginner"
	RankNoviceExplorer     Rank = "Novice Explorer"
	RankSeasonedAdventurer Rank = "Seasoned Adventurer"
	RankExpertExplorer     Rank = "Expert Explorer"
	RankAdventureMaster    Rank = "Adventure Master"
)

var rankTiers = []struct {
	below int
	rank  Rank
}{
	{250, RankBeginner},
	{500, RankNoviceExplorer},
	{750, RankSeasonedAdventurer},
	{1000, RankExpertExplorer},
}

// RankFor returns the rank earned by score.
func RankFor(score int) Rank {
	for _, tier := range rankTiers {
		if score < tier.below {
			return tier.rank
		}
	}
	return RankAdventureMaster
}

// HealthStatus describes how the player is feeling.
type HealthStatus string

const (
	StatusAwake    HealthStatus = "AWAKE"
	StatusFatigued HealthStatus = "FATIGUED"
	StatusWoozy    HealthStatus = "WOOZY"
	StatusAsleep   HealthStatus = "ASLEEP"
)

// Player is the state of the person exploring the world.
type Player struct {
	name        string
	health      int
	score       int
	inventory   *Inventory
	currentRoom *Room

	config PlayerConfig
	roll   combat.Roller
}

// NewPlayer creates a player with full health standing in start.
func NewPlayer(start *Room, cfg PlayerConfig) (*Player, error) {
	if start == nil {
		return nil, ErrNilRoom
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating player config: %w", err)
	}

	return &Player{
		name:        DefaultPlayerName,
		health:      cfg.MaxHealth,
		inventory:   NewInventory(cfg.Capacity),
		currentRoom: start,
		config:      cfg,
		roll:        combat.DefaultRoller,
	}, nil
}

func (p *Player) Name() string {
	return p.name
}

// SetName renames the player. Blank names are rejected.
func (p *Player) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	p.name = name
	return nil
}

func (p *Player) Config() PlayerConfig {
	return p.config
}

func (p *Player) Health() int {
	return p.health
}

// SetHealth sets health, clamped to the configured maximum.
func (p *Player) SetHealth(health int) error {
	if health < 0 {
		return fmt.Errorf("%w: health %d", ErrNegativeAmount, health)
	}
	p.health = min(health, p.config.MaxHealth)
	return nil
}

// TakeDamage lowers health by amount, never below zero.
func (p *Player) TakeDamage(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: damage %d", ErrNegativeAmount, amount)
	}
	p.health = max(0, p.health-amount)
	return nil
}

// HealthStatus maps current health to a status.
func (p *Player) HealthStatus() HealthStatus {
	switch {
	case p.health <= 0:
		return StatusAsleep
	case p.health < 40:
		return StatusWoozy
	case p.health < 70:
		return StatusFatigued
	default:
		return StatusAwake
	}
}

func (p *Player) Score() int {
	return p.score
}

// SetScore overwrites the score.
func (p *Player) SetScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: score %d", ErrNegativeAmount, score)
	}
	p.score = score
	return nil
}

// AddScore increases the score by points.
func (p *Player) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("%w: score delta %d", ErrNegativeAmount, points)
	}
	p.score += points
	return nil
}

// Rank returns the title earned by the current score.
func (p *Player) Rank() Rank {
	return RankFor(p.score)
}

// Inventory returns a copy of the carried items.
func (p *Player) Inventory() []*Item {
	return p.inventory.Items()
}

// InventoryWeight returns the total weight carried.
func (p *Player) InventoryWeight() int {
	return p.inventory.Weight()
}

// Capacity returns the maximum weight the player can carry.
func (p *Player) Capacity() int {
	return p.inventory.Capacity()
}

// AddToInventory picks up item if it fits within capacity.
func (p *Player) AddToInventory(item *Item) error {
	return p.inventory.Add(item)
}

// RemoveFromInventory drops item, matched by identity or name. Returns false
// if the player was not carrying it.
func (p *Player) RemoveFromInventory(item *Item) (bool, error) {
	if item == nil {
		return false, ErrNilItem
	}
	return p.inventory.Remove(item) != nil, nil
}

// FindItem returns the carried item named name, or nil.
func (p *Player) FindItem(name string) *Item {
	return p.inventory.Get(name)
}

// HasItem reports whether item is carried.
func (p *Player) HasItem(item *Item) bool {
	return p.inventory.Contains(item)
}

func (p *Player) CurrentRoom() *Room {
	return p.currentRoom
}

// SetCurrentRoom places the player in room.
func (p *Player) SetCurrentRoom(room *Room) error {
	if room == nil {
		return ErrNilRoom
	}
	p.currentRoom = room
	return nil
}

// Move travels in direction d. A *MoveError explains a refused move.
func (p *Player) Move(d Direction) error {
	cause, err := p.currentRoom.BlockCause(d)
	if err != nil {
		return err
	}
	next, _ := p.currentRoom.GetExit(d)
	if cause != BlockNone || next == nil {
		merr := &MoveError{Direction: d, Cause: cause}
		if cause == BlockPuzzle || cause == BlockMonster {
			merr.Obstacle = p.currentRoom.ActiveObstacle()
		}
		return merr
	}

	p.currentRoom = next
	return nil
}

// Attack strikes monster with the player's attack power.
func (p *Player) Attack(m *Monster) DamageResult {
	if m == nil {
		return DamageResult{AlreadyDefeated: true}
	}
	dmg, crit := combat.Strike(p.roll, p.config.AttackPower, p.config.CriticalChance)
	return m.TakeDamage(dmg, crit)
}
