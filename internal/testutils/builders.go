package testutils

import (
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
)

// NewOpenMap creates a fully walkable map with stairs in opposite
// corners, for action tests that need terrain without a generator
func NewOpenMap(width, height int) *dungeon.GameMap {
	m := dungeon.NewGameMap(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			m.Tiles[x][y] = dungeon.TileFloor
		}
	}
	m.UpStairs = dungeon.Point{X: 0, Y: 0}
	m.DownStairs = dungeon.Point{X: width - 1, Y: height - 1}
	m.Tiles[0][0] = dungeon.TileUpStairs
	m.Tiles[width-1][height-1] = dungeon.TileDownStairs
	return m
}

// NewTestActor creates an actor with a fighter, inventory, and
// equipment, ready to resolve any action
func NewTestActor(id, name string) *entities.Actor {
	return entities.NewActor(entities.ActorConfig{
		ID:        id,
		Name:      name,
		Fighter:   entities.NewFighter(30, 5, 2),
		Inventory: entities.NewInventory(26),
		Equipment: entities.NewEquipment(),
	})
}

// NewTestMonster creates a minimal hostile actor with the given stats
func NewTestMonster(id, name string, hp, power, defense int) *entities.Actor {
	return entities.NewActor(entities.ActorConfig{
		ID:      id,
		Name:    name,
		Fighter: entities.NewFighter(hp, power, defense),
	})
}

// NewPotion creates a healing consumable item
func NewPotion(id string, amount int) *entities.Item {
	return entities.NewItem(entities.ItemConfig{
		ID:         id,
		Name:       "health potion",
		Consumable: &entities.HealingConsumable{Amount: amount},
	})
}

// NewWeapon creates an equippable weapon item
func NewWeapon(id string, powerBonus int) *entities.Item {
	return entities.NewItem(entities.ItemConfig{
		ID:   id,
		Name: "dagger",
		Equippable: &entities.Equippable{
			Type:       entities.EquipmentWeapon,
			PowerBonus: powerBonus,
		},
	})
}

// NewArmor creates an equippable armor item
func NewArmor(id string, defenseBonus int) *entities.Item {
	return entities.NewItem(entities.ItemConfig{
		ID:   id,
		Name: "leather armor",
		Equippable: &entities.Equippable{
			Type:         entities.EquipmentArmor,
			DefenseBonus: defenseBonus,
		},
	})
}
