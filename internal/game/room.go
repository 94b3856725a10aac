package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/zyedidia/generic/mapset"
)

// roomLookup resolves a room id to a room in the same world.
type roomLookup func(storage.Identifier) *Room

// Room is a node of the world graph. Each direction holds an Exit; open exits
// always have a resolved neighbor and other exits never do.
type Room struct {
	id          storage.Identifier
	Name        string
	Description string
	Picture     string

	exits     [len(Directions)]Exit
	neighbors [len(Directions)]*Room

	items    mapset.Set[*Item]
	fixtures mapset.Set[*Fixture]
	puzzle   *Puzzle
	monster  *Monster
}

// NewRoom creates an empty room with walls in every direction.
func NewRoom(id storage.Identifier, name, description string) *Room {
	return &Room{
		id:          id,
		Name:        name,
		Description: description,
		items:       mapset.New[*Item](),
		fixtures:    mapset.New[*Fixture](),
	}
}

// Id returns the room's stable identifier.
func (r *Room) Id() storage.Identifier {
	return r.id
}

func invalidDirection(d Direction) error {
	return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
}

// Exit returns the exit in direction d.
func (r *Room) Exit(d Direction) (Exit, error) {
	if !d.Valid() {
		return Wall(), invalidDirection(d)
	}
	return r.exits[d], nil
}

// Exits returns a copy of every exit, indexed by Direction.
func (r *Room) Exits() [len(Directions)]Exit {
	return r.exits
}

// ExitRawValue returns the signed encoding of the exit in direction d.
func (r *Room) ExitRawValue(d Direction) (int, error) {
	e, err := r.Exit(d)
	if err != nil {
		return 0, err
	}
	return e.Raw(), nil
}

// GetExit returns the room reached by travelling d, or nil when d is not open.
func (r *Room) GetExit(d Direction) (*Room, error) {
	if !d.Valid() {
		return nil, invalidDirection(d)
	}
	return r.neighbors[d], nil
}

// setExit stores e and caches its neighbor when it is open.
func (r *Room) setExit(d Direction, e Exit, lookup roomLookup) error {
	if !d.Valid() {
		return invalidDirection(d)
	}

	var neighbor *Room
	if e.Kind() == ExitOpen {
		neighbor = lookup(e.Target())
		if neighbor == nil {
			return fmt.Errorf("room %q: exit %s leads to unknown room %q", r.id, d, e.Target())
		}
	}

	r.exits[d] = e
	r.neighbors[d] = neighbor
	return nil
}

// unblockExits opens every blocked exit in the room. Returns the directions opened.
func (r *Room) unblockExits(lookup roomLookup) ([]Direction, error) {
	var opened []Direction
	for _, d := range Directions {
		e := r.exits[d]
		if e.Kind() != ExitBlocked {
			continue
		}
		err := r.setExit(d, e.Unblocked(), lookup)
		if err != nil {
			return opened, err
		}
		opened = append(opened, d)
	}
	return opened, nil
}

// BlockCause reports why travelling d is not possible, or BlockNone if it is.
func (r *Room) BlockCause(d Direction) (BlockCause, error) {
	e, err := r.Exit(d)
	if err != nil {
		return BlockWall, err
	}

	switch e.Kind() {
	case ExitOpen:
		return BlockNone, nil
	case ExitBlocked:
		if o := r.ActiveObstacle(); o != nil {
			return blockCauseFor(o), nil
		}
		return BlockSealed, nil
	default:
		return BlockWall, nil
	}
}

// Puzzle returns the room's puzzle, or nil.
func (r *Room) Puzzle() *Puzzle {
	return r.puzzle
}

// Monster returns the room's monster, or nil.
func (r *Room) Monster() *Monster {
	return r.monster
}

// ActiveObstacle returns the obstacle currently blocking the room. A puzzle
// takes precedence over a monster.
func (r *Room) ActiveObstacle() Obstacle {
	if r.puzzle != nil && r.puzzle.IsActive() {
		return r.puzzle
	}
	if r.monster != nil && r.monster.IsActive() {
		return r.monster
	}
	return nil
}

// Obstacles returns the room's puzzle and monster, whether active or not.
func (r *Room) Obstacles() []Obstacle {
	var out []Obstacle
	if r.puzzle != nil {
		out = append(out, r.puzzle)
	}
	if r.monster != nil {
		out = append(out, r.monster)
	}
	return out
}

// Items returns the items in the room ordered by name.
func (r *Room) Items() []*Item {
	out := make([]*Item, 0, r.items.Size())
	r.items.Each(func(i *Item) {
		out = append(out, i)
	})
	slices.SortFunc(out, func(a, b *Item) int {
		return strings.Compare(foldName(a.Name), foldName(b.Name))
	})
	return out
}

// HasItem reports whether item is in the room.
func (r *Room) HasItem(item *Item) bool {
	return item != nil && r.items.Has(item)
}

// FindItem returns the room item named name, or nil.
func (r *Room) FindItem(name string) *Item {
	var found *Item
	r.items.Each(func(i *Item) {
		if found == nil && i.MatchName(name) {
			found = i
		}
	})
	return found
}

// AddItem places item in the room.
func (r *Room) AddItem(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	r.items.Put(item)
	return nil
}

// RemoveItem takes item out of the room. Returns false if it was not there.
func (r *Room) RemoveItem(item *Item) bool {
	if !r.HasItem(item) {
		return false
	}
	r.items.Remove(item)
	return true
}

// replaceItems swaps the room's item membership for items.
func (r *Room) replaceItems(items []*Item) {
	r.items = mapset.New[*Item]()
	for _, i := range items {
		r.items.Put(i)
	}
}

// Fixtures returns the fixtures in the room ordered by name.
func (r *Room) Fixtures() []*Fixture {
	out := make([]*Fixture, 0, r.fixtures.Size())
	r.fixtures.Each(func(f *Fixture) {
		out = append(out, f)
	})
	slices.SortFunc(out, func(a, b *Fixture) int {
		return strings.Compare(foldName(a.Name), foldName(b.Name))
	})
	return out
}

// FindFixture returns the room fixture named name, or nil.
func (r *Room) FindFixture(name string) *Fixture {
	var found *Fixture
	r.fixtures.Each(func(f *Fixture) {
		if found == nil && f.MatchName(name) {
			found = f
		}
	})
	return found
}
