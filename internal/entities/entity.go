// Package entities provides the data entities of the game world: actors,
// items, and the capability components they may carry. Capabilities
// (fighter, inventory, equipment, consumable, equippable) are optional
// per instance; an entity has the behaviors its components grant it,
// not behaviors inherited from a type hierarchy.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity type constants returned by GetType
const (
	TypeActor  = "actor"
	TypeCorpse = "corpse"
	TypeItem   = "item"
)

// Entity is anything that occupies a tile on the game map
type Entity interface {
	core.Entity

	// Name returns the display name of the entity
	Name() string

	// Position returns the entity's current tile coordinates
	Position() (x, y int)

	// SetPosition places the entity at the given tile coordinates
	SetPosition(x, y int)

	// BlocksMovement reports whether the entity prevents others from
	// entering its tile
	BlocksMovement() bool
}
