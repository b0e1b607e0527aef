package actions

import (
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
)

// Direction is a signed tile offset relative to an acting entity's
// current position. It is a plain value; destination and target
// lookups are recomputed at resolution time.
type Direction struct {
	DX int
	DY int
}

// Destination returns the tile the actor would reach moving by d
func Destination(actor *entities.Actor, d Direction) (x, y int) {
	ax, ay := actor.Position()
	return ax + d.DX, ay + d.DY
}

// BlockingEntityAt returns the movement-blocking entity at the
// actor's destination, or nil
func BlockingEntityAt(m *dungeon.GameMap, actor *entities.Actor, d Direction) entities.Entity {
	x, y := Destination(actor, d)
	return m.BlockingEntityAt(x, y)
}

// TargetActorAt returns the living actor at the actor's destination,
// or nil
func TargetActorAt(m *dungeon.GameMap, actor *entities.Actor, d Direction) *entities.Actor {
	x, y := Destination(actor, d)
	return m.ActorAt(x, y)
}
