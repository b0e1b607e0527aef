package actions

import (
	"fmt"

	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

// EquipAction toggles an item's equip state: equipping it if loose,
// unequipping it if worn. Slot compatibility is the equipment
// component's concern.
type EquipAction struct {
	Actor *entities.Actor
	Item  *entities.Item
}

// NewEquip creates an equip-toggle action for the given actor and item
func NewEquip(actor *entities.Actor, item *entities.Item) *EquipAction {
	return &EquipAction{Actor: actor, Item: item}
}

// Resolve toggles the equip state and narrates the change
func (a *EquipAction) Resolve(gc *Context) error {
	if a.Item == nil || a.Item.Equippable == nil {
		return errors.InvalidArgument("equip action requires an equippable item")
	}
	if a.Actor.Equipment == nil {
		return errors.Internal("equip requires an equipment capability")
	}

	replaced, equipped := a.Actor.Equipment.Toggle(a.Item)

	if replaced != nil {
		gc.Log.Emit(fmt.Sprintf("You remove the %s.", replaced.Name()), messagelog.StyleDefault)
	}

	if equipped {
		gc.Log.Emit(fmt.Sprintf("You equip the %s.", a.Item.Name()), messagelog.StyleDefault)
	} else {
		gc.Log.Emit(fmt.Sprintf("You remove the %s.", a.Item.Name()), messagelog.StyleDefault)
	}
	return nil
}
