package game

// Item is a portable object. There is one canonical Item per name; the same
// instance moves between rooms and the player's inventory.
type Item struct {
	Name        string
	Weight      int
	MaxUses     int
	Value       int
	WhenUsed    string
	Description string
	Picture     string

	usesRemaining int
}

// UsesRemaining returns how many more times the item can be used.
func (i *Item) UsesRemaining() int {
	return i.usesRemaining
}

// SetUsesRemaining sets the remaining uses, clamped to [0, MaxUses].
func (i *Item) SetUsesRemaining(uses int) {
	i.usesRemaining = max(0, min(uses, i.MaxUses))
}

// Use consumes one use. It reports false when the item is already spent.
func (i *Item) Use() bool {
	if i.usesRemaining <= 0 {
		return false
	}
	i.usesRemaining--
	return true
}

// MatchName returns true if name refers to this item (case-insensitive).
func (i *Item) MatchName(name string) bool {
	return sameName(i.Name, name)
}
