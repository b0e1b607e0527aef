package dungeon

import (
	"github.com/KirkDiggler/roguelike-api/internal/entities"
)

// Point is a tile coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameMap is one floor of the dungeon: a tile grid, the entities on
// it, and the stair locations. Entities are stored in insertion order;
// location scans (pickup's "first item here" in particular) follow
// that order.
type GameMap struct {
	Width  int
	Height int

	// Tiles is indexed [x][y]
	Tiles [][]Tile

	// DownStairs and UpStairs are the precomputed stair coordinates
	// for this floor
	DownStairs Point
	UpStairs   Point

	entities []entities.Entity
}

// NewGameMap creates a map of the given size filled with wall tiles
func NewGameMap(width, height int) *GameMap {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = TileWall
		}
	}
	return &GameMap{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds reports whether the coordinates lie on the map
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Walkable reports whether the tile at the coordinates permits
// traversal. Out-of-bounds coordinates are not walkable.
func (m *GameMap) Walkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[x][y].Walkable
}

// Entities returns all entities on the map in insertion order
func (m *GameMap) Entities() []entities.Entity {
	return m.entities
}

// AddEntity places an entity on the map at the given coordinates. The
// map takes ownership.
func (m *GameMap) AddEntity(e entities.Entity, x, y int) {
	e.SetPosition(x, y)
	m.entities = append(m.entities, e)
}

// RemoveEntity takes an entity off the map, preserving the order of
// the remaining entities. It reports whether the entity was present.
func (m *GameMap) RemoveEntity(e entities.Entity) bool {
	for i, held := range m.entities {
		if held == e {
			m.entities = append(m.entities[:i], m.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the entity is on the map
func (m *GameMap) Contains(e entities.Entity) bool {
	for _, held := range m.entities {
		if held == e {
			return true
		}
	}
	return false
}

// BlockingEntityAt returns the movement-blocking entity at the
// coordinates, or nil
func (m *GameMap) BlockingEntityAt(x, y int) entities.Entity {
	for _, e := range m.entities {
		ex, ey := e.Position()
		if ex == x && ey == y && e.BlocksMovement() {
			return e
		}
	}
	return nil
}

// ActorAt returns the living actor at the coordinates, or nil.
// Corpses are not actors for lookup purposes.
func (m *GameMap) ActorAt(x, y int) *entities.Actor {
	for _, e := range m.entities {
		actor, ok := e.(*entities.Actor)
		if !ok || !actor.IsAlive() {
			continue
		}
		ax, ay := actor.Position()
		if ax == x && ay == y {
			return actor
		}
	}
	return nil
}

// Items returns the items lying on the map in insertion order
func (m *GameMap) Items() []*entities.Item {
	var items []*entities.Item
	for _, e := range m.entities {
		if item, ok := e.(*entities.Item); ok {
			items = append(items, item)
		}
	}
	return items
}

// Actors returns the living actors on the map in insertion order
func (m *GameMap) Actors() []*entities.Actor {
	var actors []*entities.Actor
	for _, e := range m.entities {
		if actor, ok := e.(*entities.Actor); ok && actor.IsAlive() {
			actors = append(actors, actor)
		}
	}
	return actors
}
