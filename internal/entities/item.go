package entities

// Item is an entity that can be carried. It may expose a consumable
// capability, an equippable capability, neither, or both.
type Item struct {
	id   string
	name string
	x, y int

	Consumable Consumable
	Equippable *Equippable
}

// ItemConfig holds the data for creating an Item
type ItemConfig struct {
	ID         string
	Name       string
	X, Y       int
	Consumable Consumable
	Equippable *Equippable
}

// NewItem creates an Item from the given config
func NewItem(cfg ItemConfig) *Item {
	return &Item{
		id:         cfg.ID,
		name:       cfg.Name,
		x:          cfg.X,
		y:          cfg.Y,
		Consumable: cfg.Consumable,
		Equippable: cfg.Equippable,
	}
}

// GetID returns the item's unique ID
func (i *Item) GetID() string {
	return i.id
}

// GetType returns "item"
func (i *Item) GetType() string {
	return TypeItem
}

// Name returns the item's display name
func (i *Item) Name() string {
	return i.name
}

// Position returns the item's tile coordinates. Only meaningful while
// the item lies on the ground.
func (i *Item) Position() (int, int) {
	return i.x, i.y
}

// SetPosition places the item at the given tile
func (i *Item) SetPosition(x, y int) {
	i.x, i.y = x, y
}

// BlocksMovement always reports false for items
func (i *Item) BlocksMovement() bool {
	return false
}
