package actions

import (
	"fmt"

	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

// PickupAction picks up the first item lying on the acting actor's
// tile and adds it to the actor's inventory. "First" follows the
// map's entity insertion order.
type PickupAction struct {
	Actor *entities.Actor
}

// NewPickup creates a pickup action for the given actor
func NewPickup(actor *entities.Actor) *PickupAction {
	return &PickupAction{Actor: actor}
}

// Resolve transfers the item from the map to the inventory. The
// transfer is atomic: the item is never in both collections.
func (a *PickupAction) Resolve(gc *Context) error {
	inventory := a.Actor.Inventory
	if inventory == nil {
		return errors.Internal("pickup requires an inventory capability")
	}

	x, y := a.Actor.Position()

	for _, item := range gc.Map.Items() {
		ix, iy := item.Position()
		if ix != x || iy != y {
			continue
		}

		if inventory.IsFull() {
			return errors.Impossible("Your inventory is full.")
		}

		gc.Map.RemoveEntity(item)
		if err := inventory.Add(item); err != nil {
			// Capacity was validated above; failing here means the
			// world mutated mid-resolution
			gc.Map.AddEntity(item, x, y)
			return errors.Wrap(err, "inventory add failed after capacity check")
		}

		gc.Log.Emit(fmt.Sprintf("You pick up the %s.", item.Name()), messagelog.StyleDefault)
		return nil
	}

	return errors.Impossible("There is nothing here to pick up.")
}
