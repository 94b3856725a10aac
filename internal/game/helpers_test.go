package game

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/pixil98/go-adventure/internal/storage"
)

// testWorldJSON is a small world exercising both obstacle kinds.
//
//	5 Gallery     4 Vault        6 Garden (gate + gnome)
//	     \          |  (blocked)    |
//	      ---- 2 Music Room (piano) 6 -> 1 blocked
//	                |               |
//	           1 Courtyard ---- 3 Hallway (barber)
const testWorldJSON = `{
  "name": "Test Manor",
  "version": "1.0",
  "items": [
    {"name": "Lamp", "weight": "2", "max_uses": "3", "uses_remaining": "3", "value": "10", "when_used": "The lamp flickers.", "description": "A brass lamp."},
    {"name": "Hair Clippers", "weight": 3, "max_uses": 2, "uses_remaining": 2, "description": "Sharp clippers."},
    {"name": "Key", "weight": "1", "description": "A small iron key."},
    {"name": "Anvil", "weight": "20", "description": "Far too heavy."},
    {"name": "Feather", "max_uses": "many", "description": "Light as air."},
    {"name": "", "weight": "1"}
  ],
  "fixtures": [
    {"name": "Fountain", "description": "Water trickles from a stone fish."}
  ],
  "puzzles": [
    {"name": "Piano Puzzle", "active": "true", "affects_target": "true", "solution": "'piano'", "value": "150", "effects": "A melody hangs in the air.", "description": "Sheet music sits open."},
    {"name": "Locked Gate", "active": "true", "solution": "Key", "value": 50, "effects": "An iron gate bars the way."}
  ],
  "monsters": [
    {"name": "Barber", "active": "true", "damage": "-7", "can_attack": "true", "attack": "snips at you", "effects": "A barber blocks the door.", "value": "200", "solution": "Hair Clippers"},
    {"name": "Gnome", "active": "true", "can_attack": "false", "value": "25", "solution": "Lamp", "effects": "A gnome glares."}
  ],
  "rooms": [
    {"room_name": "Courtyard", "room_number": "1", "description": "An open courtyard.", "N": "2", "S": "0", "E": "3", "W": "0", "items": "Lamp, Hair Clippers, Anvil, Feather, Ghost Item", "fixtures": "Fountain, Ghost Fixture"},
    {"room_name": "Music Room", "room_number": "2", "description": "A dusty music room.", "N": "-4", "S": "1", "E": "0", "W": "-5", "items": "Key", "puzzle": "Piano Puzzle"},
    {"room_name": "Hallway", "room_number": "3", "description": "A narrow hallway.", "N": "-6", "S": "0", "E": "0", "W": "1", "monster": "Barber"},
    {"room_name": "Vault", "room_number": "4", "description": "A cold vault.", "S": "2"},
    {"room_name": "Gallery", "room_number": "5", "description": "Portraits line the walls.", "E": 2},
    {"room_name": "Garden", "room_number": "6", "description": "An overgrown garden.", "S": "3", "W": "-1", "puzzle": "Locked Gate", "monster": "Gnome"}
  ]
}`

func testDefinition(t *testing.T) *Definition {
	t.Helper()
	def := &Definition{}
	if err := json.Unmarshal([]byte(testWorldJSON), def); err != nil {
		t.Fatalf("failed to unmarshal test world: %v", err)
	}
	return def
}

// neverCritical makes combat rolls deterministic.
func neverCritical(int) int { return 99 }

func newTestWorld(t *testing.T, opts ...WorldOpt) *World {
	t.Helper()
	opts = append([]WorldOpt{WithRoller(neverCritical)}, opts...)
	w, err := NewWorld(testDefinition(t), opts...)
	if err != nil {
		t.Fatalf("unexpected error building world: %v", err)
	}
	return w
}

// placePlayer moves the player directly, bypassing exits.
func placePlayer(t *testing.T, w *World, id storage.Identifier) {
	t.Helper()
	room := w.Room(id)
	if room == nil {
		t.Fatalf("room %q not found", id)
	}
	if err := w.Player().SetCurrentRoom(room); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertExitsConsistent checks that open exits have a matching neighbor and
// that no other exit has one.
func assertExitsConsistent(t *testing.T, w *World) {
	t.Helper()
	for _, room := range w.Rooms() {
		for _, d := range Directions {
			raw := exitRaw(t, room, d)
			next := neighbor(t, room, d)
			if raw > 0 {
				if next == nil {
					t.Errorf("room %s exit %s: raw %d has no neighbor", room.Id(), d, raw)
				} else if next.Id() != storage.Identifier(strconv.Itoa(raw)) {
					t.Errorf("room %s exit %s: raw %d resolved to %s", room.Id(), d, raw, next.Id())
				}
			} else if next != nil {
				t.Errorf("room %s exit %s: raw %d has neighbor %s", room.Id(), d, raw, next.Id())
			}
		}
	}
}

func exitRaw(t *testing.T, room *Room, d Direction) int {
	t.Helper()
	raw, err := room.ExitRawValue(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return raw
}

func neighbor(t *testing.T, room *Room, d Direction) *Room {
	t.Helper()
	next, err := room.GetExit(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return next
}

func blockCause(t *testing.T, room *Room, d Direction) BlockCause {
	t.Helper()
	cause, err := room.BlockCause(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cause
}

func itemNames(items []*Item) []string {
	names := make([]string, 0, len(items))
	for _, i := range items {
		names = append(names, i.Name)
	}
	return names
}

func storageId(s string) storage.Identifier {
	return storage.Identifier(s)
}
