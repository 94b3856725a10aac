package game

import (
	"log/slog"
)

const (
	defaultItemWeight    = 1
	defaultItemMaxUses   = 1
	defaultItemUses      = 1
	defaultFixtureWeight = 1000
	defaultMonsterDamage = 5
)

// Catalog holds the canonical entity instances of a world, keyed by
// case-insensitive name. Lookups return nil when nothing matches.
type Catalog struct {
	items    map[string]*Item
	fixtures map[string]*Fixture
	puzzles  map[string]*Puzzle
	monsters map[string]*Monster
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		items:    make(map[string]*Item),
		fixtures: make(map[string]*Fixture),
		puzzles:  make(map[string]*Puzzle),
		monsters: make(map[string]*Monster),
	}
}

// BuildCatalog creates entities for every named definition in def. Missing or
// malformed numbers fall back to defaults, and unnamed entries are skipped.
func BuildCatalog(def *Definition) *Catalog {
	c := NewCatalog()

	for _, d := range def.Items {
		if !named("item", d.Name) {
			continue
		}
		item := &Item{
			Name:        d.Name,
			Weight:      d.Weight.Int(defaultItemWeight),
			MaxUses:     d.MaxUses.Int(defaultItemMaxUses),
			Value:       d.Value.Int(0),
			WhenUsed:    d.WhenUsed,
			Description: d.Description,
			Picture:     d.Picture,
		}
		item.SetUsesRemaining(d.UsesRemaining.Int(defaultItemUses))
		c.AddItem(item)
	}

	for _, d := range def.Fixtures {
		if !named("fixture", d.Name) {
			continue
		}
		c.AddFixture(&Fixture{
			Name:        d.Name,
			Weight:      d.Weight.Int(defaultFixtureWeight),
			Puzzle:      d.Puzzle,
			States:      d.States,
			Description: d.Description,
			Picture:     d.Picture,
		})
	}

	for _, d := range def.Puzzles {
		if !named("puzzle", d.Name) {
			continue
		}
		p := &Puzzle{
			Name:          d.Name,
			Solution:      ParseSolution(d.Solution),
			Value:         d.Value.Int(0),
			Description:   d.Description,
			EffectsText:   d.Effects,
			Target:        d.Target,
			AffectsTarget: d.AffectsTarget.Bool(),
			AffectsPlayer: d.AffectsPlayer.Bool(),
			Picture:       d.Picture,
		}
		p.SetActive(d.Active.Bool())
		c.AddPuzzle(p)
	}

	for _, d := range def.Monsters {
		if !named("monster", d.Name) {
			continue
		}
		m := &Monster{
			Name:        d.Name,
			Description: d.Description,
			Damage:      d.Damage.Int(defaultMonsterDamage),
			CanAttack:   d.CanAttack.Bool(),
			AttackText:  d.Attack,
			EffectsText: d.Effects,
			Value:       d.Value.Int(0),
			Solution:    d.Solution,
			Target:      d.Target,
			Picture:     d.Picture,
			MaxHealth:   DefaultMonsterHealth,
		}
		m.SetActive(d.Active.Bool())
		c.AddMonster(m)
	}

	slog.Debug("catalog built",
		"items", len(c.items),
		"fixtures", len(c.fixtures),
		"puzzles", len(c.puzzles),
		"monsters", len(c.monsters))

	return c
}

func named(kind, name string) bool {
	if foldName(name) == "" {
		slog.Warn("skipping unnamed entity", "kind", kind)
		return false
	}
	return true
}

// AddItem registers an item, replacing any item with the same name.
func (c *Catalog) AddItem(i *Item) {
	c.items[foldName(i.Name)] = i
}

// AddFixture registers a fixture, replacing any fixture with the same name.
func (c *Catalog) AddFixture(f *Fixture) {
	c.fixtures[foldName(f.Name)] = f
}

// AddPuzzle registers a puzzle, replacing any puzzle with the same name.
func (c *Catalog) AddPuzzle(p *Puzzle) {
	c.puzzles[foldName(p.Name)] = p
}

// AddMonster registers a monster, replacing any monster with the same name.
func (c *Catalog) AddMonster(m *Monster) {
	c.monsters[foldName(m.Name)] = m
}

// Item returns the item named name, or nil.
func (c *Catalog) Item(name string) *Item {
	return c.items[foldName(name)]
}

// Fixture returns the fixture named name, or nil.
func (c *Catalog) Fixture(name string) *Fixture {
	return c.fixtures[foldName(name)]
}

// Puzzle returns the puzzle named name, or nil.
func (c *Catalog) Puzzle(name string) *Puzzle {
	return c.puzzles[foldName(name)]
}

// Monster returns the monster named name, or nil.
func (c *Catalog) Monster(name string) *Monster {
	return c.monsters[foldName(name)]
}

// Items returns every catalog item.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, 0, len(c.items))
	for _, i := range c.items {
		out = append(out, i)
	}
	return out
}
