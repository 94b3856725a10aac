package game

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/combat"
	"github.com/pixil98/go-adventure/internal/storage"
)

// World is a single play session: the catalog, the room graph and the player.
// It is not safe for concurrent use.
type World struct {
	name      string
	version   string
	sessionId string

	catalog   *Catalog
	rooms     map[storage.Identifier]*Room
	roomOrder []*Room
	player    *Player

	playerConfig PlayerConfig
	roll         combat.Roller
}

// LoadWorld reads a world definition file and builds a World from it.
func LoadWorld(path string, opts ...WorldOpt) (*World, error) {
	def := &Definition{}
	err := storage.ReadJSON(path, def)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	w, err := NewWorld(def, opts...)
	if err != nil {
		if lerr, ok := err.(*LoadError); ok {
			lerr.Source = path
		}
		return nil, err
	}
	return w, nil
}

// NewWorld builds a World from an in-memory definition. The first room
// defined is where the player starts.
func NewWorld(def *Definition, opts ...WorldOpt) (*World, error) {
	if def == nil {
		return nil, &LoadError{Err: ErrNoRooms}
	}
	if err := def.Validate(); err != nil {
		return nil, &LoadError{Err: err}
	}

	w := &World{
		name:         def.Name,
		version:      def.Version.String(),
		sessionId:    uuid.New().String(),
		catalog:      BuildCatalog(def),
		rooms:        make(map[storage.Identifier]*Room, len(def.Rooms)),
		playerConfig: DefaultPlayerConfig(),
		roll:         combat.DefaultRoller,
	}

	for _, opt := range opts {
		opt(w)
	}

	for i := range def.Rooms {
		rd := &def.Rooms[i]
		room := NewRoom(rd.Id(), rd.RoomName, rd.Description)
		room.Picture = rd.Picture
		w.attachEntities(room, rd)
		w.rooms[room.id] = room
		w.roomOrder = append(w.roomOrder, room)
	}

	// Wire exits once every room exists so neighbors can be resolved.
	for i, room := range w.roomOrder {
		for _, d := range Directions {
			exit := ExitFromRaw(def.Rooms[i].Exit(d))
			if exit.Kind() != ExitWall && w.Room(exit.Target()) == nil {
				slog.Warn("exit leads to unknown room, treating as a wall",
					"room", room.id,
					"direction", d.String(),
					"target", exit.Target())
				exit = Wall()
			}

			err := room.setExit(d, exit, w.Room)
			if err != nil {
				return nil, &LoadError{Err: err}
			}
		}
	}

	player, err := NewPlayer(w.roomOrder[0], w.playerConfig)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	player.roll = w.roll
	w.player = player

	slog.Info("world loaded",
		"session", w.sessionId,
		"name", w.name,
		"rooms", len(w.roomOrder),
		"start", w.roomOrder[0].id)

	return w, nil
}

// attachEntities resolves the room's entity references against the catalog,
// skipping any name the catalog does not know.
func (w *World) attachEntities(room *Room, rd *RoomDef) {
	for _, name := range splitNames(rd.Items) {
		if item := w.catalog.Item(name); item != nil {
			room.items.Put(item)
		} else {
			slog.Debug("skipping unknown item", "room", room.id, "item", name)
		}
	}

	for _, name := range splitNames(rd.Fixtures) {
		if fixture := w.catalog.Fixture(name); fixture != nil {
			room.fixtures.Put(fixture)
		} else {
			slog.Debug("skipping unknown fixture", "room", room.id, "fixture", name)
		}
	}

	if name := strings.TrimSpace(rd.Puzzle); name != "" {
		room.puzzle = w.catalog.Puzzle(name)
		if room.puzzle == nil {
			slog.Debug("skipping unknown puzzle", "room", room.id, "puzzle", name)
		}
	}

	if name := strings.TrimSpace(rd.Monster); name != "" {
		room.monster = w.catalog.Monster(name)
		if room.monster == nil {
			slog.Debug("skipping unknown monster", "room", room.id, "monster", name)
		}
	}
}

func splitNames(list string) []string {
	var names []string
	for _, n := range strings.Split(list, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func (w *World) Name() string {
	return w.name
}

func (w *World) Version() string {
	return w.version
}

// SessionId identifies this play session in logs and save files.
func (w *World) SessionId() string {
	return w.sessionId
}

func (w *World) Catalog() *Catalog {
	return w.catalog
}

func (w *World) Player() *Player {
	return w.player
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id storage.Identifier) *Room {
	return w.rooms[storage.Identifier(strings.TrimSpace(id.String()))]
}

// Rooms returns every room in definition order.
func (w *World) Rooms() []*Room {
	out := make([]*Room, len(w.roomOrder))
	copy(out, w.roomOrder)
	return out
}

// StartRoom returns the room the player started in.
func (w *World) StartRoom() *Room {
	return w.roomOrder[0]
}

// CurrentRoom returns the room the player is standing in.
func (w *World) CurrentRoom() *Room {
	return w.player.CurrentRoom()
}

// ApplySolution tries input against the active obstacle in the player's
// room. A puzzle is tried before a monster and at most one obstacle is
// resolved per call. On success the obstacle's value is added to the score
// and every blocked exit of the room is opened. On failure nothing changes.
func (w *World) ApplySolution(input string) bool {
	_, ok := w.applySolution(input)
	return ok
}

func (w *World) applySolution(input string) (Obstacle, bool) {
	room := w.player.CurrentRoom()

	var candidates []Obstacle
	if room.puzzle != nil && room.puzzle.IsActive() {
		candidates = append(candidates, room.puzzle)
	}
	if room.monster != nil && room.monster.IsActive() {
		candidates = append(candidates, room.monster)
	}

	for _, o := range candidates {
		if !o.Resolve(input) {
			continue
		}
		w.resolved(room, o)
		return o, true
	}

	return nil, false
}

// resolved awards the obstacle's value and opens the room's blocked exits.
func (w *World) resolved(room *Room, o Obstacle) {
	if err := w.player.AddScore(max(o.Reward(), 0)); err != nil {
		slog.Warn("awarding score", "session", w.sessionId, "error", err)
	}

	opened, err := room.unblockExits(w.Room)
	if err != nil {
		slog.Error("unblocking exits", "session", w.sessionId, "room", room.id, "error", err)
	}

	slog.Info("obstacle resolved",
		"session", w.sessionId,
		"room", room.id,
		"kind", o.ObstacleKind(),
		"obstacle", o.ObstacleName(),
		"opened", len(opened),
		"score", w.player.Score())
}
