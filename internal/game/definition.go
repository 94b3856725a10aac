package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Definition is the declarative world document a World is built from.
type Definition struct {
	Name     string       `json:"name"`
	Version  FlexValue    `json:"version"`
	Items    []ItemDef    `json:"items,omitempty"`
	Fixtures []FixtureDef `json:"fixtures,omitempty"`
	Puzzles  []PuzzleDef  `json:"puzzles,omitempty"`
	Monsters []MonsterDef `json:"monsters,omitempty"`
	Rooms    []RoomDef    `json:"rooms"`
}

// ItemDef describes a catalog item.
type ItemDef struct {
	Name          string    `json:"name"`
	Weight        FlexValue `json:"weight,omitzero"`
	MaxUses       FlexValue `json:"max_uses,omitzero"`
	UsesRemaining FlexValue `json:"uses_remaining,omitzero"`
	Value         FlexValue `json:"value,omitzero"`
	WhenUsed      string    `json:"when_used,omitempty"`
	Description   string    `json:"description,omitempty"`
	Picture       string    `json:"picture,omitempty"`
}

// FixtureDef describes a catalog fixture.
type FixtureDef struct {
	Name        string    `json:"name"`
	Weight      FlexValue `json:"weight,omitzero"`
	Puzzle      string    `json:"puzzle,omitempty"`
	States      string    `json:"states,omitempty"`
	Description string    `json:"description,omitempty"`
	Picture     string    `json:"picture,omitempty"`
}

// PuzzleDef describes a catalog puzzle. Solution is a quoted answer ('piano')
// or a bare item name.
type PuzzleDef struct {
	Name          string    `json:"name"`
	Active        FlexValue `json:"active,omitzero"`
	AffectsTarget FlexValue `json:"affects_target,omitzero"`
	AffectsPlayer FlexValue `json:"affects_player,omitzero"`
	Solution      string    `json:"solution"`
	Value         FlexValue `json:"value,omitzero"`
	Description   string    `json:"description,omitempty"`
	Effects       string    `json:"effects,omitempty"`
	Target        string    `json:"target,omitempty"`
	Picture       string    `json:"picture,omitempty"`
}

// MonsterDef describes a catalog monster. Solution names the item that defeats it.
type MonsterDef struct {
	Name        string    `json:"name"`
	Active      FlexValue `json:"active,omitzero"`
	Damage      FlexValue `json:"damage,omitzero"`
	CanAttack   FlexValue `json:"can_attack,omitzero"`
	Attack      string    `json:"attack,omitempty"`
	Effects     string    `json:"effects,omitempty"`
	Value       FlexValue `json:"value,omitzero"`
	Solution    string    `json:"solution"`
	Description string    `json:"description,omitempty"`
	Target      string    `json:"target,omitempty"`
	Picture     string    `json:"picture,omitempty"`
}

// RoomDef describes one room. Exits use the signed encoding, and items and
// fixtures are comma-joined name lists.
type RoomDef struct {
	RoomName    string    `json:"room_name"`
	RoomNumber  FlexValue `json:"room_number"`
	Description string    `json:"description,omitempty"`
	North       FlexValue `json:"N,omitzero"`
	South       FlexValue `json:"S,omitzero"`
	East        FlexValue `json:"E,omitzero"`
	West        FlexValue `json:"W,omitzero"`
	Items       string    `json:"items,omitempty"`
	Fixtures    string    `json:"fixtures,omitempty"`
	Puzzle      string    `json:"puzzle,omitempty"`
	Monster     string    `json:"monster,omitempty"`
	Picture     string    `json:"picture,omitempty"`
}

// Id returns the room's identifier.
func (r *RoomDef) Id() storage.Identifier {
	return storage.Identifier(strings.TrimSpace(r.RoomNumber.String()))
}

// Exit returns the raw exit value for d, defaulting to a wall.
func (r *RoomDef) Exit(d Direction) int {
	switch d {
	case North:
		return r.North.Int(0)
	case South:
		return r.South.Int(0)
	case East:
		return r.East.Int(0)
	case West:
		return r.West.Int(0)
	default:
		return 0
	}
}

// Validate satisfies storage.ValidatingSpec. Only problems that make the
// room graph unusable are reported. Unresolved entity names and exits to
// undefined rooms are skipped while the world is built.
func (d *Definition) Validate() error {
	el := errors.NewErrorList()

	if len(d.Rooms) == 0 {
		el.Add(ErrNoRooms)
	}

	ids := make(map[storage.Identifier]bool, len(d.Rooms))
	for i := range d.Rooms {
		id := d.Rooms[i].Id()
		if id == "" {
			el.Add(fmt.Errorf("room %d: room_number is required", i))
			continue
		}
		if ids[id] {
			el.Add(fmt.Errorf("room %d: duplicate room_number %q", i, id))
		}
		ids[id] = true

		for _, dir := range Directions {
			if raw := d.Rooms[i].Exit(dir); !ValidRawExit(raw) {
				el.Add(fmt.Errorf("room %q: exit %s value %d is out of range", id, dir, raw))
			}
		}
	}

	return el.Err()
}

// FlexValue is a scalar document field that may be written as a JSON string,
// number or boolean. World files commonly quote numbers ("weight": "2").
type FlexValue struct {
	raw string
	set bool
}

// NewFlexValue returns a FlexValue holding s.
func NewFlexValue(s string) FlexValue {
	return FlexValue{raw: s, set: true}
}

// FlexInt returns a FlexValue holding n.
func FlexInt(n int) FlexValue {
	return NewFlexValue(strconv.Itoa(n))
}

// FlexBool returns a FlexValue holding b.
func FlexBool(b bool) FlexValue {
	return NewFlexValue(strconv.FormatBool(b))
}

func (v *FlexValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = FlexValue{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = NewFlexValue(s)
		return nil
	}

	if len(b) > 0 && (b[0] == '{' || b[0] == '[') {
		return fmt.Errorf("expected a scalar value, got %s", b)
	}

	*v = NewFlexValue(string(b))
	return nil
}

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.raw)
}

// IsSet reports whether the field was present in the document.
func (v FlexValue) IsSet() bool {
	return v.set
}

func (v FlexValue) String() string {
	return v.raw
}

// Int parses the value as an integer, returning def when it is missing or malformed.
func (v FlexValue) Int(def int) int {
	if !v.set {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.raw))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
		if ferr != nil || math.IsNaN(f) || f < math.MinInt || f >= -math.MinInt {
			return def
		}
		return int(f)
	}
	return n
}

// Bool parses the value as a boolean. Anything other than a case-insensitive
// "true" is false.
func (v FlexValue) Bool() bool {
	return strings.EqualFold(strings.TrimSpace(v.raw), "true")
}
