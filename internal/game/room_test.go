package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestRoom_BlockCause(t *testing.T) {
	rooms := map[storage.Identifier]*Room{
		"1": NewRoom("1", "One", ""),
		"2": NewRoom("2", "Two", ""),
	}
	lookup := func(id storage.Identifier) *Room { return rooms[id] }

	room := rooms["1"]
	if err := room.setExit(North, Open(2), lookup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := room.setExit(East, Blocked(2), lookup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "open", blockCause(t, room, North), BlockNone)
	testutil.AssertEqual(t, "wall", blockCause(t, room, South), BlockWall)
	testutil.AssertEqual(t, "sealed", blockCause(t, room, East), BlockSealed)

	room.monster = &Monster{Name: "Rat"}
	room.monster.SetActive(true)
	testutil.AssertEqual(t, "monster", blockCause(t, room, East), BlockMonster)

	room.puzzle = &Puzzle{Name: "Riddle"}
	room.puzzle.SetActive(true)
	testutil.AssertEqual(t, "puzzle first", blockCause(t, room, East), BlockPuzzle)
	testutil.AssertEqual(t, "active obstacle", room.ActiveObstacle().ObstacleName(), "Riddle")
}

func TestRoom_SetExit(t *testing.T) {
	lookup := func(storage.Identifier) *Room { return nil }
	room := NewRoom("1", "One", "")

	err := room.setExit(North, Open(5), lookup)
	testutil.AssertErrorContains(t, err, `unknown room "5"`)
	testutil.AssertEqual(t, "unchanged", exitRaw(t, room, North), 0)

	err = room.setExit(Direction(8), Wall(), lookup)
	testutil.AssertEqual(t, "invalid direction", errors.Is(err, ErrInvalidDirection), true)

	testutil.AssertEqual(t, "blocked needs no neighbor", room.setExit(West, Blocked(5), lookup), nil)
	testutil.AssertEqual(t, "blocked raw", exitRaw(t, room, West), -5)
}

func TestRoom_InvalidDirection(t *testing.T) {
	room := NewRoom("1", "One", "")

	tests := map[string]struct {
		call func(Direction) error
	}{
		"exit": {call: func(d Direction) error {
			_, err := room.Exit(d)
			return err
		}},
		"raw value": {call: func(d Direction) error {
			_, err := room.ExitRawValue(d)
			return err
		}},
		"neighbor": {call: func(d Direction) error {
			_, err := room.GetExit(d)
			return err
		}},
		"block cause": {call: func(d Direction) error {
			_, err := room.BlockCause(d)
			return err
		}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.call(Direction(-1))
			testutil.AssertEqual(t, "negative", errors.Is(err, ErrInvalidDirection), true)
			err = tt.call(Direction(8))
			testutil.AssertEqual(t, "too large", errors.Is(err, ErrInvalidDirection), true)
			testutil.AssertEqual(t, "valid", tt.call(West), nil)
		})
	}
}

func TestRoom_Items(t *testing.T) {
	room := NewRoom("1", "One", "")
	lamp := &Item{Name: "lamp"}
	key := &Item{Name: "Key"}

	testutil.AssertEqual(t, "nil", errors.Is(room.AddItem(nil), ErrNilItem), true)
	_ = room.AddItem(lamp)
	_ = room.AddItem(key)
	_ = room.AddItem(lamp)

	testutil.AssertEqual(t, "sorted", strings.Join(itemNames(room.Items()), ","), "Key,lamp")
	testutil.AssertEqual(t, "find", room.FindItem("LAMP") == lamp, true)
	testutil.AssertEqual(t, "remove", room.RemoveItem(lamp), true)
	testutil.AssertEqual(t, "remove again", room.RemoveItem(lamp), false)
	testutil.AssertEqual(t, "missing", room.FindItem("lamp") == nil, true)
}
