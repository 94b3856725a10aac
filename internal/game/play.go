package game

import (
	"fmt"
	"log/slog"
)

// UseResult describes what happened when an item was used.
type UseResult struct {
	Item     *Item
	Solved   bool
	Obstacle Obstacle
}

// AttackResult describes one exchange of blows with a monster.
type AttackResult struct {
	Monster *Monster
	DamageResult
}

// Move travels in direction d.
func (w *World) Move(d Direction) error {
	from := w.player.CurrentRoom()
	err := w.player.Move(d)
	if err != nil {
		return err
	}
	slog.Debug("player moved",
		"session", w.sessionId,
		"from", from.id,
		"to", w.player.CurrentRoom().id,
		"direction", d)
	return nil
}

// Take moves the named item from the current room into the inventory.
func (w *World) Take(name string) (*Item, error) {
	room := w.player.CurrentRoom()
	item := room.FindItem(name)
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	err := w.player.AddToInventory(item)
	if err != nil {
		return nil, err
	}
	room.RemoveItem(item)
	return item, nil
}

// Drop moves the named item from the inventory into the current room.
func (w *World) Drop(name string) (*Item, error) {
	item := w.player.FindItem(name)
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if _, err := w.player.RemoveFromInventory(item); err != nil {
		return nil, err
	}
	if err := w.player.CurrentRoom().AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Use applies a carried item to the current room. One use is consumed
// whether or not the item resolved anything.
func (w *World) Use(name string) (UseResult, error) {
	item := w.player.FindItem(name)
	if item == nil {
		return UseResult{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if item.UsesRemaining() <= 0 {
		return UseResult{Item: item}, fmt.Errorf("%w: %s", ErrNoUsesLeft, item.Name)
	}

	o, solved := w.applySolution(item.Name)
	item.Use()
	return UseResult{Item: item, Solved: solved, Obstacle: o}, nil
}

// Answer submits a typed answer to the active puzzle in the current room.
func (w *World) Answer(text string) (bool, error) {
	puzzle := w.player.CurrentRoom().Puzzle()
	if puzzle == nil || !puzzle.IsActive() {
		return false, ErrNoActivePuzzle
	}
	if puzzle.Solution.Kind != SolutionAnswer {
		return false, ErrRequiresItem
	}
	return w.ApplySolution(text), nil
}

// Attack strikes the active monster in the current room. A monster beaten
// this way is resolved exactly as if its defeating item had been used.
func (w *World) Attack() (AttackResult, error) {
	room := w.player.CurrentRoom()
	m := room.Monster()
	if m == nil || !m.IsActive() {
		return AttackResult{}, ErrNothingToAttack
	}

	res := AttackResult{Monster: m, DamageResult: w.player.Attack(m)}
	if res.Defeated {
		w.resolved(room, m)
	}
	return res, nil
}

// MonsterTurn lets the active monster in the current room attack the player.
// Returns the damage dealt.
func (w *World) MonsterTurn() int {
	m := w.player.CurrentRoom().Monster()
	if m == nil {
		return 0
	}
	dmg := m.Attack(w.player)
	if dmg > 0 {
		slog.Debug("monster attacked",
			"session", w.sessionId,
			"monster", m.Name,
			"damage", dmg,
			"health", w.player.Health())
	}
	return dmg
}

// Examine returns the description of a carried item, a room item or a
// fixture, checked in that order.
func (w *World) Examine(name string) (string, error) {
	if item := w.player.FindItem(name); item != nil {
		return item.Description, nil
	}
	room := w.player.CurrentRoom()
	if item := room.FindItem(name); item != nil {
		return item.Description, nil
	}
	if fixture := room.FindFixture(name); fixture != nil {
		return fixture.Description, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}
