package entities

import "github.com/KirkDiggler/roguelike-api/internal/errors"

// Inventory is an ordered sequence of items with a fixed capacity.
// Order is insertion order and survives removals.
type Inventory struct {
	capacity int
	items    []*Item
}

// NewInventory creates an empty inventory with the given capacity
func NewInventory(capacity int) *Inventory {
	return &Inventory{capacity: capacity}
}

// Capacity returns the maximum number of items the inventory holds
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Len returns the number of items currently held
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// IsFull reports whether the inventory has no room left
func (inv *Inventory) IsFull() bool {
	return len(inv.items) >= inv.capacity
}

// Items returns the held items in order
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// At returns the item at the given position, if any
func (inv *Inventory) At(index int) (*Item, bool) {
	if index < 0 || index >= len(inv.items) {
		return nil, false
	}
	return inv.items[index], true
}

// Contains reports whether the inventory holds the given item
func (inv *Inventory) Contains(item *Item) bool {
	for _, held := range inv.items {
		if held == item {
			return true
		}
	}
	return false
}

// Add appends an item to the end of the inventory. Callers validate
// capacity before mutating; a full inventory here is a contract
// violation, not a player-facing rejection.
func (inv *Inventory) Add(item *Item) error {
	if inv.IsFull() {
		return errors.FailedPrecondition("inventory is full")
	}
	inv.items = append(inv.items, item)
	return nil
}

// Remove takes an item out of the inventory, preserving the order of
// the remaining items. It reports whether the item was held.
func (inv *Inventory) Remove(item *Item) bool {
	for i, held := range inv.items {
		if held == item {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}
