package entities

// Fighter holds an actor's combat stats. Power and defense here are
// base values; equipment bonuses are applied by Actor.Power and
// Actor.Defense.
type Fighter struct {
	HP          int
	MaxHP       int
	BasePower   int
	BaseDefense int
}

// NewFighter creates a fighter at full health
func NewFighter(maxHP, power, defense int) *Fighter {
	return &Fighter{
		HP:          maxHP,
		MaxHP:       maxHP,
		BasePower:   power,
		BaseDefense: defense,
	}
}

// Damage reduces hit points by the given amount, clamped at zero.
// Callers are expected to pass a non-negative amount.
func (f *Fighter) Damage(amount int) {
	f.HP -= amount
	if f.HP < 0 {
		f.HP = 0
	}
}

// Heal restores up to amount hit points, capped at MaxHP, and returns
// the number actually recovered.
func (f *Fighter) Heal(amount int) int {
	if f.HP == f.MaxHP {
		return 0
	}

	newHP := f.HP + amount
	if newHP > f.MaxHP {
		newHP = f.MaxHP
	}

	recovered := newHP - f.HP
	f.HP = newHP
	return recovered
}
