package entities

// EquipmentType categorizes equippable items into slots
type EquipmentType string

// Equipment slots
const (
	EquipmentWeapon EquipmentType = "weapon"
	EquipmentArmor  EquipmentType = "armor"
)

// Equippable is the capability of an item that can be worn or wielded
type Equippable struct {
	Type         EquipmentType
	PowerBonus   int
	DefenseBonus int
}

// Equipment is an actor's equipment set: one item per slot, or none
type Equipment struct {
	slots map[EquipmentType]*Item
}

// NewEquipment creates an empty equipment set
func NewEquipment() *Equipment {
	return &Equipment{slots: make(map[EquipmentType]*Item)}
}

// InSlot returns the item equipped in the given slot, if any
func (e *Equipment) InSlot(slot EquipmentType) *Item {
	return e.slots[slot]
}

// IsEquipped reports whether the given item is currently equipped
func (e *Equipment) IsEquipped(item *Item) bool {
	if item == nil || item.Equippable == nil {
		return false
	}
	return e.slots[item.Equippable.Type] == item
}

// Toggle equips the item if it is not equipped, and unequips it if it
// is. Equipping into an occupied slot displaces the previous item,
// which is returned as replaced. The returned equipped flag reports
// whether the item is equipped after the toggle. An item without an
// equippable capability is a caller contract violation; Toggle leaves
// state unchanged and reports equipped=false.
func (e *Equipment) Toggle(item *Item) (replaced *Item, equipped bool) {
	if item == nil || item.Equippable == nil {
		return nil, false
	}

	slot := item.Equippable.Type
	if e.slots[slot] == item {
		delete(e.slots, slot)
		return nil, false
	}

	replaced = e.slots[slot]
	e.slots[slot] = item
	return replaced, true
}

// PowerBonus sums the power bonuses of all equipped items
func (e *Equipment) PowerBonus() int {
	bonus := 0
	for _, item := range e.slots {
		if item != nil && item.Equippable != nil {
			bonus += item.Equippable.PowerBonus
		}
	}
	return bonus
}

// DefenseBonus sums the defense bonuses of all equipped items
func (e *Equipment) DefenseBonus() int {
	bonus := 0
	for _, item := range e.slots {
		if item != nil && item.Equippable != nil {
			bonus += item.Equippable.DefenseBonus
		}
	}
	return bonus
}
