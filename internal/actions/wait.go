package actions

import "github.com/KirkDiggler/roguelike-api/internal/entities"

// WaitAction consumes a turn with no effect
type WaitAction struct {
	Actor *entities.Actor
}

// NewWait creates a wait action for the given actor
func NewWait(actor *entities.Actor) *WaitAction {
	return &WaitAction{Actor: actor}
}

// Resolve always succeeds and mutates nothing
func (a *WaitAction) Resolve(_ *Context) error {
	return nil
}
