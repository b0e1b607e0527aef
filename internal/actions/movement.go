package actions

import (
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
)

// MovementAction moves the acting actor one step in the given
// direction. The position only changes after every blocking check
// passes.
type MovementAction struct {
	Actor *entities.Actor
	Dir   Direction
}

// NewMovement creates a movement action for the given actor and direction
func NewMovement(actor *entities.Actor, dir Direction) *MovementAction {
	return &MovementAction{Actor: actor, Dir: dir}
}

// Resolve validates bounds, tile walkability, and blocking entities,
// then commits the move
func (a *MovementAction) Resolve(gc *Context) error {
	destX, destY := Destination(a.Actor, a.Dir)

	if !gc.Map.InBounds(destX, destY) {
		// destination is off the map
		return errors.Impossible("That way is blocked.")
	}
	if !gc.Map.Tiles[destX][destY].Walkable {
		// destination tile does not permit traversal
		return errors.Impossible("That way is blocked.")
	}
	if gc.Map.BlockingEntityAt(destX, destY) != nil {
		// destination is occupied by a blocking entity
		return errors.Impossible("That way is blocked.")
	}

	a.Actor.Move(a.Dir.DX, a.Dir.DY)
	return nil
}
