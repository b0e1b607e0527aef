package dungeon

import (
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
)

// World is the floor stack and its lifecycle. Floors are kept once
// generated, so descending to a visited floor and ascending back both
// land on the same map. Floor numbers are 1-based.
type World struct {
	generator *Generator
	player    *entities.Actor
	floors    []*GameMap
	current   int
}

// WorldConfig holds the dependencies for a World
type WorldConfig struct {
	Generator *Generator
	Player    *entities.Actor
}

// Validate ensures all required dependencies are provided
func (c *WorldConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Player == nil {
		vb.RequiredField("Player")
	}

	return vb.Build()
}

// NewWorld creates a world with no floors yet. Call GenerateFloor to
// carve the first floor and place the player on it.
func NewWorld(cfg *WorldConfig) (*World, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &World{
		generator: cfg.Generator,
		player:    cfg.Player,
	}, nil
}

// Player returns the player-controlled actor
func (w *World) Player() *entities.Actor {
	return w.player
}

// Map returns the current floor's map, or nil before the first floor
// is generated
func (w *World) Map() *GameMap {
	if w.current == 0 {
		return nil
	}
	return w.floors[w.current-1]
}

// CurrentFloorNumber returns the 1-based number of the current floor
func (w *World) CurrentFloorNumber() int {
	return w.current
}

// NextFloorExists reports whether the floor below the current one has
// already been generated
func (w *World) NextFloorExists() bool {
	return w.current < len(w.floors)
}

// GenerateFloor carves a new floor below the deepest one, makes it
// current, and places the player at its entry (the up-stairs tile).
func (w *World) GenerateFloor() error {
	m, err := w.generator.Generate(len(w.floors) + 1)
	if err != nil {
		return errors.Wrap(err, "failed to generate floor")
	}

	w.floors = append(w.floors, m)
	w.moveTo(len(w.floors), m.UpStairs)
	return nil
}

// DescendFloor moves to the already-generated next floor, placing the
// player on its up-stairs
func (w *World) DescendFloor() error {
	if !w.NextFloorExists() {
		return errors.FailedPrecondition("no next floor to descend to")
	}

	next := w.floors[w.current]
	w.moveTo(w.current+1, next.UpStairs)
	return nil
}

// AscendFloor moves to the previous floor, placing the player on its
// down-stairs
func (w *World) AscendFloor() error {
	if w.current <= 1 {
		return errors.FailedPrecondition("no previous floor to ascend to")
	}

	prev := w.floors[w.current-2]
	w.moveTo(w.current-1, prev.DownStairs)
	return nil
}

// moveTo switches the current floor and transfers the player to the
// given tile on it
func (w *World) moveTo(floor int, at Point) {
	if cur := w.Map(); cur != nil {
		cur.RemoveEntity(w.player)
	}
	w.current = floor
	w.Map().AddEntity(w.player, at.X, at.Y)
}
