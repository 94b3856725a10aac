package game

import "fmt"

// Inventory holds the items carried by the player, capped by total weight.
type Inventory struct {
	capacity int
	items    []*Item
}

// NewInventory creates an empty inventory that can carry up to capacity weight.
func NewInventory(capacity int) *Inventory {
	return &Inventory{capacity: capacity}
}

// Capacity returns the maximum total weight.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Weight returns the total weight of the carried items.
func (inv *Inventory) Weight() int {
	total := 0
	for _, i := range inv.items {
		total += i.Weight
	}
	return total
}

// CanCarry reports whether item fits within the remaining capacity.
func (inv *Inventory) CanCarry(item *Item) bool {
	return inv.Weight()+item.Weight <= inv.capacity
}

// Add adds an item to the inventory if it fits.
func (inv *Inventory) Add(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	if !inv.CanCarry(item) {
		return fmt.Errorf("%w: %s weighs %d, carrying %d of %d", ErrOverCapacity, item.Name, item.Weight, inv.Weight(), inv.capacity)
	}
	inv.items = append(inv.items, item)
	return nil
}

// Remove removes item by identity, falling back to the first item with the
// same name. Returns the removed item, or nil if nothing matched.
func (inv *Inventory) Remove(item *Item) *Item {
	if item == nil {
		return nil
	}
	for idx, i := range inv.items {
		if i == item {
			return inv.removeAt(idx)
		}
	}
	for idx, i := range inv.items {
		if i.MatchName(item.Name) {
			return inv.removeAt(idx)
		}
	}
	return nil
}

func (inv *Inventory) removeAt(idx int) *Item {
	i := inv.items[idx]
	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	return i
}

// Get returns the carried item named name, or nil if not found.
func (inv *Inventory) Get(name string) *Item {
	for _, i := range inv.items {
		if i.MatchName(name) {
			return i
		}
	}
	return nil
}

// Contains checks if item is carried.
func (inv *Inventory) Contains(item *Item) bool {
	for _, i := range inv.items {
		if i == item {
			return true
		}
	}
	return false
}

// Items returns a copy of the carried items in pickup order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// replace swaps the carried items wholesale. The caller checks capacity.
func (inv *Inventory) replace(items []*Item) {
	inv.items = append([]*Item(nil), items...)
}
