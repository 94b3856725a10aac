package game

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// SaveState is the save-file document: everything about a world that can
// change during play.
type SaveState struct {
	GameName  string      `json:"game_name"`
	Version   string      `json:"version"`
	SessionId string      `json:"session_id,omitempty"`
	Player    *PlayerSave `json:"player" validate:"required"`
	Rooms     []RoomSave  `json:"rooms" validate:"required,dive"`
}

type PlayerSave struct {
	Name        string             `json:"name" validate:"required"`
	Health      *int               `json:"health" validate:"required,gte=0"`
	Score       *int               `json:"score" validate:"required,gte=0"`
	CurrentRoom storage.Identifier `json:"current_room" validate:"required"`
	Inventory   []InventorySave    `json:"inventory" validate:"required,dive"`
}

type InventorySave struct {
	Name          string `json:"name" validate:"required"`
	UsesRemaining *int   `json:"uses_remaining" validate:"required,gte=0"`
}

type RoomSave struct {
	RoomNumber    storage.Identifier `json:"room_number" validate:"required"`
	PuzzleActive  *bool              `json:"puzzle_active,omitempty"`
	MonsterActive *bool              `json:"monster_active,omitempty"`
	Exits         *ExitsSave         `json:"exits" validate:"required"`
	Items         []string           `json:"items" validate:"required"`
}

type ExitsSave struct {
	North *RawExit `json:"N" validate:"required"`
	South *RawExit `json:"S" validate:"required"`
	East  *RawExit `json:"E" validate:"required"`
	West  *RawExit `json:"W" validate:"required"`
}

func (e *ExitsSave) get(d Direction) *RawExit {
	switch d {
	case North:
		return e.North
	case South:
		return e.South
	case East:
		return e.East
	default:
		return e.West
	}
}

// RawExit is a signed exit value. It is written as a string and read from
// either a string or a number.
type RawExit int

func (r RawExit) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(r)))
}

func (r *RawExit) UnmarshalJSON(b []byte) error {
	var v FlexValue
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	if !v.IsSet() {
		return fmt.Errorf("exit value is null")
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.String()))
	if err != nil {
		return fmt.Errorf("parsing exit value %q: %w", v.String(), err)
	}
	if !ValidRawExit(n) {
		return fmt.Errorf("exit value %d is out of range", n)
	}
	*r = RawExit(n)
	return nil
}

func rawExit(e Exit) *RawExit {
	r := RawExit(e.Raw())
	return &r
}

var saveValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// Validate satisfies storage.ValidatingSpec.
func (s *SaveState) Validate() error {
	err := saveValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	el := errors.NewErrorList()
	for _, e := range verrs {
		field := e.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		switch e.Tag() {
		case "required":
			el.Add(fmt.Errorf("%s is required", field))
		case "gte":
			el.Add(fmt.Errorf("%s must be at least %s", field, e.Param()))
		default:
			el.Add(fmt.Errorf("%s is invalid (%s)", field, e.Tag()))
		}
	}
	return el.Err()
}

// Snapshot captures the mutable state of the world.
func (w *World) Snapshot() *SaveState {
	p := w.player
	health, score := p.Health(), p.Score()

	ps := &PlayerSave{
		Name:        p.Name(),
		Health:      &health,
		Score:       &score,
		CurrentRoom: p.CurrentRoom().id,
		Inventory:   []InventorySave{},
	}
	for _, item := range p.Inventory() {
		uses := item.UsesRemaining()
		ps.Inventory = append(ps.Inventory, InventorySave{Name: item.Name, UsesRemaining: &uses})
	}

	rooms := make([]RoomSave, 0, len(w.roomOrder))
	for _, room := range w.roomOrder {
		exits := room.Exits()
		rs := RoomSave{
			RoomNumber: room.id,
			Exits: &ExitsSave{
				North: rawExit(exits[North]),
				South: rawExit(exits[South]),
				East:  rawExit(exits[East]),
				West:  rawExit(exits[West]),
			},
			Items: []string{},
		}
		if room.puzzle != nil {
			active := room.puzzle.IsActive()
			rs.PuzzleActive = &active
		}
		if room.monster != nil {
			active := room.monster.IsActive()
			rs.MonsterActive = &active
		}
		for _, item := range room.Items() {
			rs.Items = append(rs.Items, item.Name)
		}
		rooms = append(rooms, rs)
	}

	return &SaveState{
		GameName:  w.name,
		Version:   w.version,
		SessionId: w.sessionId,
		Player:    ps,
		Rooms:     rooms,
	}
}

// Save writes the world's mutable state to path. The file is replaced atomically.
func (w *World) Save(path string) error {
	err := storage.WriteJSON(path, w.Snapshot())
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	slog.Info("game saved", "session", w.sessionId, "path", path)
	return nil
}

// Load restores the world's mutable state from path. Nothing changes unless
// the whole document can be applied.
func (w *World) Load(path string) error {
	state := &SaveState{}
	err := storage.ReadJSON(path, state)
	if err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}

	err = w.Restore(state)
	if err != nil {
		if perr, ok := err.(*PersistenceError); ok {
			perr.Path = path
		}
		return err
	}
	slog.Info("game loaded", "session", w.sessionId, "path", path, "from_session", state.SessionId)
	return nil
}

type stagedRoom struct {
	room          *Room
	puzzleActive  *bool
	monsterActive *bool
	exits         [len(Directions)]Exit
	items         []*Item
}

type stagedRestore struct {
	name      string
	health    int
	score     int
	room      *Room
	inventory []*Item
	uses      map[*Item]int
	rooms     []stagedRoom
}

// Restore applies a save document to the world. The document is checked in
// full before anything is changed. Unknown rooms and items are skipped.
func (w *World) Restore(state *SaveState) error {
	if state == nil {
		return &PersistenceError{Op: "restore", Err: fmt.Errorf("save state is nil")}
	}
	if err := state.Validate(); err != nil {
		return &PersistenceError{Op: "restore", Err: err}
	}

	staged, err := w.stage(state)
	if err != nil {
		return &PersistenceError{Op: "restore", Err: err}
	}

	w.apply(staged)
	return nil
}

func (w *World) stage(state *SaveState) (*stagedRestore, error) {
	el := errors.NewErrorList()

	if state.GameName != "" && state.GameName != w.name {
		slog.Warn("save was written for a different game", "session", w.sessionId, "save_game", state.GameName, "game", w.name)
	}

	ps := state.Player
	s := &stagedRestore{
		name:   strings.TrimSpace(ps.Name),
		health: *ps.Health,
		score:  *ps.Score,
		room:   w.Room(ps.CurrentRoom),
		uses:   make(map[*Item]int),
	}
	if s.name == "" {
		el.Add(fmt.Errorf("player.name must not be blank"))
	}
	if s.room == nil {
		el.Add(fmt.Errorf("player.current_room %q does not exist", ps.CurrentRoom))
	}

	weight := 0
	for _, is := range ps.Inventory {
		item := w.catalog.Item(is.Name)
		if item == nil {
			slog.Warn("skipping unknown inventory item", "session", w.sessionId, "item", is.Name)
			continue
		}
		if _, dup := s.uses[item]; dup {
			slog.Warn("skipping duplicate inventory item", "session", w.sessionId, "item", is.Name)
			continue
		}
		s.inventory = append(s.inventory, item)
		s.uses[item] = *is.UsesRemaining
		weight += item.Weight
	}
	if weight > w.player.Capacity() {
		el.Add(fmt.Errorf("player.inventory weighs %d, over capacity %d", weight, w.player.Capacity()))
	}

	for _, rs := range state.Rooms {
		room := w.Room(rs.RoomNumber)
		if room == nil {
			slog.Warn("skipping unknown room", "session", w.sessionId, "room", rs.RoomNumber)
			continue
		}

		sr := stagedRoom{
			room:          room,
			puzzleActive:  rs.PuzzleActive,
			monsterActive: rs.MonsterActive,
		}
		for _, d := range Directions {
			exit := ExitFromRaw(int(*rs.Exits.get(d)))
			if exit.Kind() != ExitWall && w.Room(exit.Target()) == nil {
				el.Add(fmt.Errorf("room %q: exit %s leads to unknown room %q", room.id, d, exit.Target()))
			}
			sr.exits[d] = exit
		}
		for _, name := range rs.Items {
			item := w.catalog.Item(name)
			if item == nil {
				slog.Warn("skipping unknown room item", "session", w.sessionId, "room", room.id, "item", name)
				continue
			}
			sr.items = append(sr.items, item)
		}
		s.rooms = append(s.rooms, sr)
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// apply writes a staged restore onto the world. Every reference in it has
// already been resolved, so it cannot fail part way through.
func (w *World) apply(s *stagedRestore) {
	for item, uses := range s.uses {
		item.SetUsesRemaining(uses)
	}

	for _, sr := range s.rooms {
		room := sr.room
		if sr.puzzleActive != nil {
			if room.puzzle != nil {
				room.puzzle.SetActive(*sr.puzzleActive)
			} else {
				slog.Warn("ignoring puzzle flag for room without a puzzle", "session", w.sessionId, "room", room.id)
			}
		}
		if sr.monsterActive != nil {
			if room.monster != nil {
				room.monster.SetActive(*sr.monsterActive)
			} else {
				slog.Warn("ignoring monster flag for room without a monster", "session", w.sessionId, "room", room.id)
			}
		}
		for _, d := range Directions {
			room.exits[d] = sr.exits[d]
			room.neighbors[d] = nil
			if sr.exits[d].Kind() == ExitOpen {
				room.neighbors[d] = w.Room(sr.exits[d].Target())
			}
		}
		room.replaceItems(sr.items)
	}

	p := w.player
	p.name = s.name
	p.health = min(s.health, p.config.MaxHealth)
	p.score = s.score
	p.currentRoom = s.room
	p.inventory.replace(s.inventory)
}
