package dungeon

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/pkg/idgen"
)

// rect is a room footprint. x2/y2 are exclusive of the inner floor:
// the outermost ring stays wall so adjacent rooms keep a shared wall.
type rect struct {
	x1, y1, x2, y2 int
}

func newRect(x, y, width, height int) rect {
	return rect{x1: x, y1: y, x2: x + width, y2: y + height}
}

func (r rect) center() Point {
	return Point{X: (r.x1 + r.x2) / 2, Y: (r.y1 + r.y2) / 2}
}

func (r rect) intersects(other rect) bool {
	return r.x1 <= other.x2 && r.x2 >= other.x1 &&
		r.y1 <= other.y2 && r.y2 >= other.y1
}

// GeneratorConfig holds the dependencies and tuning knobs for floor
// generation
type GeneratorConfig struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator

	MapWidth    int
	MapHeight   int
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int

	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
}

// Validate ensures the config is usable
func (c *GeneratorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MapWidth < 10 || c.MapHeight < 10 {
		vb.InvalidField("MapWidth/MapHeight", "must be at least 10x10")
	}
	if c.MaxRooms < 1 {
		vb.InvalidField("MaxRooms", "must be positive")
	}
	if c.RoomMinSize < 3 || c.RoomMaxSize < c.RoomMinSize {
		vb.InvalidField("RoomMinSize/RoomMaxSize", "must be at least 3 and ordered")
	}

	return vb.Build()
}

// Generator carves procedural floors: rectangular rooms joined by
// L-shaped corridors, stairs at the entry and exit rooms, and
// dice-rolled monster and item spawns.
type Generator struct {
	roller dice.Roller
	idGen  idgen.Generator
	cfg    GeneratorConfig
}

// NewGenerator creates a floor generator from the given config
func NewGenerator(cfg *GeneratorConfig) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
		cfg:    *cfg,
	}, nil
}

// Generate carves a new floor. The up-stairs sit in the first room
// (the entry tile for a descending player) and the down-stairs in the
// last room carved.
func (g *Generator) Generate(floorNumber int) (*GameMap, error) {
	m := NewGameMap(g.cfg.MapWidth, g.cfg.MapHeight)

	var rooms []rect
	for i := 0; i < g.cfg.MaxRooms; i++ {
		room, err := g.rollRoom()
		if err != nil {
			return nil, err
		}

		overlaps := false
		for _, other := range rooms {
			if room.intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		g.carveRoom(m, room)

		if len(rooms) > 0 {
			if err := g.carveTunnel(m, rooms[len(rooms)-1].center(), room.center()); err != nil {
				return nil, err
			}
			if err := g.populateRoom(m, room); err != nil {
				return nil, err
			}
		}

		rooms = append(rooms, room)
	}

	if len(rooms) == 0 {
		return nil, errors.Internal("floor generation produced no rooms")
	}

	entry := rooms[0].center()
	exit := rooms[len(rooms)-1].center()

	m.UpStairs = entry
	m.Tiles[entry.X][entry.Y] = TileUpStairs
	m.DownStairs = exit
	m.Tiles[exit.X][exit.Y] = TileDownStairs

	return m, nil
}

func (g *Generator) rollRoom() (rect, error) {
	width, err := g.randInt(g.cfg.RoomMinSize, g.cfg.RoomMaxSize)
	if err != nil {
		return rect{}, err
	}
	height, err := g.randInt(g.cfg.RoomMinSize, g.cfg.RoomMaxSize)
	if err != nil {
		return rect{}, err
	}
	x, err := g.randInt(0, g.cfg.MapWidth-width-1)
	if err != nil {
		return rect{}, err
	}
	y, err := g.randInt(0, g.cfg.MapHeight-height-1)
	if err != nil {
		return rect{}, err
	}
	return newRect(x, y, width, height), nil
}

func (g *Generator) carveRoom(m *GameMap, room rect) {
	for x := room.x1 + 1; x < room.x2; x++ {
		for y := room.y1 + 1; y < room.y2; y++ {
			m.Tiles[x][y] = TileFloor
		}
	}
}

func (g *Generator) carveTunnel(m *GameMap, from, to Point) error {
	// Coin flip decides whether the elbow bends horizontally or
	// vertically first
	flip, err := g.roller.Roll(2)
	if err != nil {
		return errors.Wrap(err, "failed to roll tunnel direction")
	}

	corner := Point{X: to.X, Y: from.Y}
	if flip == 1 {
		corner = Point{X: from.X, Y: to.Y}
	}

	carveLine(m, from, corner)
	carveLine(m, corner, to)
	return nil
}

func carveLine(m *GameMap, from, to Point) {
	x, y := from.X, from.Y
	for x != to.X {
		m.Tiles[x][y] = TileFloor
		x += step(x, to.X)
	}
	for y != to.Y {
		m.Tiles[x][y] = TileFloor
		y += step(y, to.Y)
	}
	m.Tiles[x][y] = TileFloor
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

func (g *Generator) populateRoom(m *GameMap, room rect) error {
	monsters, err := g.randInt(0, g.cfg.MaxMonstersPerRoom)
	if err != nil {
		return err
	}
	for i := 0; i < monsters; i++ {
		spot, err := g.randSpot(m, room)
		if err != nil {
			return err
		}
		if spot == nil {
			continue
		}

		monster, err := g.rollMonster(spot.X, spot.Y)
		if err != nil {
			return err
		}
		m.AddEntity(monster, spot.X, spot.Y)
	}

	items, err := g.randInt(0, g.cfg.MaxItemsPerRoom)
	if err != nil {
		return err
	}
	for i := 0; i < items; i++ {
		spot, err := g.randSpot(m, room)
		if err != nil {
			return err
		}
		if spot == nil {
			continue
		}

		item, err := g.rollItem(spot.X, spot.Y)
		if err != nil {
			return err
		}
		m.AddEntity(item, spot.X, spot.Y)
	}

	return nil
}

// randSpot picks an unoccupied floor tile inside the room, or nil if
// the rolled tile is taken
func (g *Generator) randSpot(m *GameMap, room rect) (*Point, error) {
	x, err := g.randInt(room.x1+1, room.x2-1)
	if err != nil {
		return nil, err
	}
	y, err := g.randInt(room.y1+1, room.y2-1)
	if err != nil {
		return nil, err
	}

	if m.BlockingEntityAt(x, y) != nil {
		return nil, nil
	}
	return &Point{X: x, Y: y}, nil
}

func (g *Generator) rollMonster(x, y int) (*entities.Actor, error) {
	roll, err := g.roller.Roll(10)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll monster table")
	}

	if roll <= 8 {
		return entities.NewActor(entities.ActorConfig{
			ID:      g.idGen.Generate(),
			Name:    "orc",
			X:       x,
			Y:       y,
			Fighter: entities.NewFighter(10, 3, 0),
		}), nil
	}

	return entities.NewActor(entities.ActorConfig{
		ID:      g.idGen.Generate(),
		Name:    "troll",
		X:       x,
		Y:       y,
		Fighter: entities.NewFighter(16, 4, 1),
	}), nil
}

func (g *Generator) rollItem(x, y int) (*entities.Item, error) {
	roll, err := g.roller.Roll(10)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll item table")
	}

	switch {
	case roll <= 6:
		return entities.NewItem(entities.ItemConfig{
			ID:         g.idGen.Generate(),
			Name:       "health potion",
			X:          x,
			Y:          y,
			Consumable: &entities.HealingConsumable{Amount: 4},
		}), nil
	case roll <= 8:
		return entities.NewItem(entities.ItemConfig{
			ID:   g.idGen.Generate(),
			Name: "dagger",
			X:    x,
			Y:    y,
			Equippable: &entities.Equippable{
				Type:       entities.EquipmentWeapon,
				PowerBonus: 2,
			},
		}), nil
	default:
		return entities.NewItem(entities.ItemConfig{
			ID:   g.idGen.Generate(),
			Name: "leather armor",
			X:    x,
			Y:    y,
			Equippable: &entities.Equippable{
				Type:         entities.EquipmentArmor,
				DefenseBonus: 1,
			},
		}), nil
	}
}

// randInt rolls a uniform integer in [minValue, maxValue]
func (g *Generator) randInt(minValue, maxValue int) (int, error) {
	if maxValue <= minValue {
		return minValue, nil
	}
	roll, err := g.roller.Roll(maxValue - minValue + 1)
	if err != nil {
		return 0, errors.Wrap(err, "dice roll failed")
	}
	return minValue + roll - 1, nil
}
