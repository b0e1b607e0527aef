package entities

// Actor is an entity capable of acting: it holds position, fighter
// stats, an inventory, and an equipment set. Actors are owned by the
// game map; the action core only mutates their fields.
type Actor struct {
	id   string
	name string
	x, y int
	dead bool

	Fighter   *Fighter
	Inventory *Inventory
	Equipment *Equipment
}

// ActorConfig holds the data for creating an Actor
type ActorConfig struct {
	ID        string
	Name      string
	X, Y      int
	Fighter   *Fighter
	Inventory *Inventory
	Equipment *Equipment
}

// NewActor creates an Actor from the given config
func NewActor(cfg ActorConfig) *Actor {
	return &Actor{
		id:        cfg.ID,
		name:      cfg.Name,
		x:         cfg.X,
		y:         cfg.Y,
		Fighter:   cfg.Fighter,
		Inventory: cfg.Inventory,
		Equipment: cfg.Equipment,
	}
}

// GetID returns the actor's unique ID
func (a *Actor) GetID() string {
	return a.id
}

// GetType returns "actor", or "corpse" once the actor has died
func (a *Actor) GetType() string {
	if a.dead {
		return TypeCorpse
	}
	return TypeActor
}

// Name returns the actor's display name
func (a *Actor) Name() string {
	return a.name
}

// Position returns the actor's tile coordinates
func (a *Actor) Position() (int, int) {
	return a.x, a.y
}

// SetPosition places the actor at the given tile
func (a *Actor) SetPosition(x, y int) {
	a.x, a.y = x, y
}

// Move shifts the actor by the given offset
func (a *Actor) Move(dx, dy int) {
	a.x += dx
	a.y += dy
}

// BlocksMovement reports whether the actor blocks its tile. Corpses
// do not block.
func (a *Actor) BlocksMovement() bool {
	return !a.dead
}

// IsAlive reports whether the actor can still act
func (a *Actor) IsAlive() bool {
	return !a.dead
}

// Die turns the actor into a corpse: it stops blocking, is no longer
// found by actor lookups, and its name reflects the remains.
func (a *Actor) Die() {
	if a.dead {
		return
	}
	a.dead = true
	a.name = "remains of " + a.name
}

// Power returns the actor's attack power including equipment bonuses
func (a *Actor) Power() int {
	power := 0
	if a.Fighter != nil {
		power = a.Fighter.BasePower
	}
	if a.Equipment != nil {
		power += a.Equipment.PowerBonus()
	}
	return power
}

// Defense returns the actor's defense including equipment bonuses
func (a *Actor) Defense() int {
	defense := 0
	if a.Fighter != nil {
		defense = a.Fighter.BaseDefense
	}
	if a.Equipment != nil {
		defense += a.Equipment.DefenseBonus()
	}
	return defense
}
