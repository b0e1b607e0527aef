package actions

import (
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
)

// ItemAction uses an item, optionally aimed at a target tile. With no
// target it aims at the acting actor's own tile.
type ItemAction struct {
	Actor  *entities.Actor
	Item   *entities.Item
	Target dungeon.Point
}

// NewItemAction creates an item-use action. A nil target defaults to
// the actor's current position.
func NewItemAction(actor *entities.Actor, item *entities.Item, target *dungeon.Point) *ItemAction {
	if target == nil {
		x, y := actor.Position()
		target = &dungeon.Point{X: x, Y: y}
	}
	return &ItemAction{Actor: actor, Item: item, Target: *target}
}

// TargetActor returns the living actor at the target tile, if any
func (a *ItemAction) TargetActor(m *dungeon.GameMap) *entities.Actor {
	return m.ActorAt(a.Target.X, a.Target.Y)
}

// Resolve delegates to the item's consumable capability with this
// action's target as context. An item without a consumable capability
// resolves as a no-op success. A successfully activated consumable is
// consumed: the item leaves the actor's inventory.
func (a *ItemAction) Resolve(gc *Context) error {
	if a.Item == nil {
		return errors.InvalidArgument("item action requires an item")
	}
	if a.Item.Consumable == nil {
		return nil
	}

	if err := a.Item.Consumable.Activate(a.Actor, a.TargetActor(gc.Map), gc.Log); err != nil {
		return err
	}

	if a.Actor.Inventory != nil {
		a.Actor.Inventory.Remove(a.Item)
	}
	return nil
}
