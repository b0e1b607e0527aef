package actions

import (
	"fmt"

	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

// DropAction drops a held item onto the acting actor's tile. Dropping
// an equipped non-armor item unequips it first, atomically with the
// drop. Equipped armor refuses with a warning instead of a rejection:
// the action still succeeds and nothing changes.
type DropAction struct {
	ItemAction
}

// NewDrop creates a drop action for the given actor and item
func NewDrop(actor *entities.Actor, item *entities.Item) *DropAction {
	return &DropAction{ItemAction: *NewItemAction(actor, item, nil)}
}

// Resolve moves the item from the inventory back to the map
func (a *DropAction) Resolve(gc *Context) error {
	equipment := a.Actor.Equipment

	if equipment != nil && equipment.IsEquipped(a.Item) {
		if a.Item.Equippable.Type == entities.EquipmentArmor {
			// Deliberately not an Impossible: the player is warned and
			// the turn proceeds
			gc.Log.Emit("You cannot drop something you are wearing.", messagelog.StyleInvalid)
			return nil
		}

		equipment.Toggle(a.Item)
		gc.Log.Emit(fmt.Sprintf("You remove the %s.", a.Item.Name()), messagelog.StyleDefault)
	}

	a.drop(gc)
	return nil
}

func (a *DropAction) drop(gc *Context) {
	if a.Actor.Inventory != nil {
		a.Actor.Inventory.Remove(a.Item)
	}

	x, y := a.Actor.Position()
	gc.Map.AddEntity(a.Item, x, y)
	gc.Log.Emit(fmt.Sprintf("You dropped the %s.", a.Item.Name()), messagelog.StyleDefault)
}
