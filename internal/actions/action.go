// Package actions implements the turn-based action resolution core: a
// set of action values, each bound to one acting entity at
// construction, that validate against and then mutate the shared game
// world when resolved. An action resolves exactly once. Resolution
// either completes, or rejects with an errors.Impossible carrying a
// player-facing reason and leaving the world untouched.
package actions

import (
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

//go:generate mockgen -destination=mock/mock.go -package=actionsmock github.com/KirkDiggler/roguelike-api/internal/actions FloorLifecycle

// FloorLifecycle is the world-lifecycle collaborator consumed by
// TakeStairsAction. dungeon.World implements it.
type FloorLifecycle interface {
	// NextFloorExists reports whether the floor below has been generated
	NextFloorExists() bool

	// GenerateFloor carves a new floor below and moves the player there
	GenerateFloor() error

	// DescendFloor moves to the already-generated next floor
	DescendFloor() error

	// AscendFloor moves to the previous floor
	AscendFloor() error

	// CurrentFloorNumber returns the 1-based current floor number
	CurrentFloorNumber() int
}

// Context is the explicit world handle a resolution operates on.
// Callers build a fresh Context per resolution; actions never reach
// the world through entity back-references.
type Context struct {
	// Map is the current floor at the time the action was requested
	Map *dungeon.GameMap

	// Floors drives floor transitions. Only required for stair actions.
	Floors FloorLifecycle

	// Log receives narration. Emitting never fails the action.
	Log messagelog.Sink

	// Player identifies the player-controlled actor, used only to pick
	// narration styling. May be nil in simulations without a player.
	Player *entities.Actor
}

// Validate ensures the context carries what every action needs
func (c *Context) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Map == nil {
		vb.RequiredField("Map")
	}
	if c.Log == nil {
		vb.RequiredField("Log")
	}

	return vb.Build()
}

// Action is one resolvable player or monster intent. Implementations
// are single-use values bound to their acting entity at construction.
type Action interface {
	// Resolve performs the action against the given context. A nil
	// return means the action completed and the turn is consumed. An
	// Impossible error means nothing was mutated and the reason should
	// be surfaced to the initiator.
	Resolve(gc *Context) error
}
