package actions

import (
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
)

// BumpAction is the ambiguous directional intent: attack whatever is
// there, otherwise walk there. It is the only point where an action's
// concrete behavior is chosen at resolution time.
type BumpAction struct {
	Actor *entities.Actor
	Dir   Direction
}

// NewBump creates a bump action for the given actor and direction
func NewBump(actor *entities.Actor, dir Direction) *BumpAction {
	return &BumpAction{Actor: actor, Dir: dir}
}

// DispatchBump maps the current world state, actor, and offset to the
// concrete action a bump resolves into: melee when a living actor
// occupies the destination, movement otherwise.
func DispatchBump(m *dungeon.GameMap, actor *entities.Actor, dir Direction) Action {
	if TargetActorAt(m, actor, dir) != nil {
		return NewMelee(actor, dir)
	}
	return NewMovement(actor, dir)
}

// Resolve dispatches to the concrete action and resolves it
func (a *BumpAction) Resolve(gc *Context) error {
	return DispatchBump(gc.Map, a.Actor, a.Dir).Resolve(gc)
}
