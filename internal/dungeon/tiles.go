// Package dungeon provides the game world consumed by the action core:
// the tile grid and entity collection of a floor (GameMap), the floor
// stack with its lifecycle operations (World), and procedural floor
// generation.
package dungeon

// Graphic is a fixed-size glyph record: a codepoint plus foreground
// and background RGB. The action core never reads graphics; they are
// carried for the presentation layer.
type Graphic struct {
	Ch rune     `json:"ch"`
	FG [3]uint8 `json:"fg"`
	BG [3]uint8 `json:"bg"`
}

// Tile is the fixed-size tile record: walkable flag, transparency
// flag, and one graphic each for unlit and lit rendering.
type Tile struct {
	Walkable    bool
	Transparent bool
	Dark        Graphic
	Light       Graphic
}

// Shroud is the graphic for unexplored, unseen tiles
var Shroud = Graphic{Ch: ' ', FG: [3]uint8{255, 255, 255}, BG: [3]uint8{0, 0, 0}}

var (
	floorDark  = [3]uint8{46, 46, 35}
	floorLight = [3]uint8{173, 159, 64}
)

// Tile kinds
var (
	TileFloor = Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Ch: ' ', FG: [3]uint8{255, 255, 255}, BG: floorDark},
		Light:       Graphic{Ch: ' ', FG: [3]uint8{255, 255, 255}, BG: floorLight},
	}

	TileWall = Tile{
		Walkable:    false,
		Transparent: false,
		Dark:        Graphic{Ch: '░', FG: [3]uint8{0, 0, 0}, BG: [3]uint8{36, 35, 27}},
		Light:       Graphic{Ch: '░', FG: [3]uint8{0, 0, 0}, BG: [3]uint8{94, 82, 44}},
	}

	TileDownStairs = Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Ch: '>', FG: [3]uint8{255, 255, 255}, BG: floorDark},
		Light:       Graphic{Ch: '>', FG: [3]uint8{255, 255, 255}, BG: floorLight},
	}

	TileUpStairs = Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Ch: '<', FG: [3]uint8{255, 255, 255}, BG: floorDark},
		Light:       Graphic{Ch: '<', FG: [3]uint8{255, 255, 255}, BG: floorLight},
	}
)
