package game

import (
	"errors"
	"fmt"
)

var (
	ErrNoRooms          = errors.New("world defines no rooms")
	ErrNilRoom          = errors.New("room is nil")
	ErrNilItem          = errors.New("item is nil")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrBlankName        = errors.New("name must not be blank")
	ErrOverCapacity     = errors.New("inventory is too heavy")
	ErrNotFound         = errors.New("not found")
	ErrNoUsesLeft       = errors.New("item has no uses left")
	ErrNoActivePuzzle   = errors.New("no active puzzle here")
	ErrRequiresItem     = errors.New("puzzle requires an item")
	ErrNothingToAttack  = errors.New("nothing to attack here")
)

// LoadError reports a world definition that cannot be turned into a playable world.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("loading world: %v", e.Err)
	}
	return fmt.Sprintf("loading world %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed save or restore. The in-memory world is
// unchanged when one is returned.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// BlockCause describes why a direction cannot be travelled.
type BlockCause int

const (
	BlockNone BlockCause = iota
	BlockWall
	BlockPuzzle
	BlockMonster
	BlockSealed
)

func (c BlockCause) String() string {
	switch c {
	case BlockNone:
		return "none"
	case BlockWall:
		return "wall"
	case BlockPuzzle:
		return "puzzle"
	case BlockMonster:
		return "monster"
	case BlockSealed:
		return "sealed"
	default:
		return fmt.Sprintf("BlockCause(%d)", int(c))
	}
}

// MoveError is returned when the player cannot travel in a direction.
type MoveError struct {
	Direction Direction
	Cause     BlockCause
	Obstacle  Obstacle
}

func (e *MoveError) Error() string {
	if e.Obstacle != nil {
		return fmt.Sprintf("cannot move %s: blocked by %s %q", e.Direction, e.Cause, e.Obstacle.ObstacleName())
	}
	return fmt.Sprintf("cannot move %s: %s", e.Direction, e.Cause)
}
