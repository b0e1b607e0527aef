package entities

import (
	"fmt"

	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

// Consumable is the capability of an item that does something when
// used. Activation either succeeds (the item is then consumed by the
// invoking action) or rejects with an Impossible error, leaving state
// untouched.
type Consumable interface {
	// Activate applies the consumable's effect. consumer is the actor
	// using the item; target is the actor at the action's target
	// location, if any.
	Activate(consumer, target *Actor, log messagelog.Sink) error
}

// HealingConsumable restores hit points to the consumer
type HealingConsumable struct {
	Amount int
}

// Activate heals the consumer, rejecting when already at full health
func (h *HealingConsumable) Activate(consumer, _ *Actor, log messagelog.Sink) error {
	if consumer == nil || consumer.Fighter == nil {
		return errors.Internal("healing consumable requires a fighter")
	}

	recovered := consumer.Fighter.Heal(h.Amount)
	if recovered == 0 {
		return errors.Impossible("Your health is already full.")
	}

	log.Emit(
		fmt.Sprintf("You consume the item, and recover %d HP!", recovered),
		messagelog.StyleHealthRecovered,
	)
	return nil
}
