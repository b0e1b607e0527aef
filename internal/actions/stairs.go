package actions

import (
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

// TakeStairsAction moves the acting actor between floors when it is
// standing on a staircase. Downward selects the descending intent.
// Standing on neither staircase resolves as a silent no-op.
type TakeStairsAction struct {
	Actor    *entities.Actor
	Downward bool
}

// NewTakeStairs creates a stairs action for the given actor
func NewTakeStairs(actor *entities.Actor, downward bool) *TakeStairsAction {
	return &TakeStairsAction{Actor: actor, Downward: downward}
}

// Resolve checks both staircases of the floor the actor is on. The
// two checks are independent: both run against the position the actor
// held when the action started, even though a tile is never both
// staircases at once.
func (a *TakeStairsAction) Resolve(gc *Context) error {
	if gc.Floors == nil {
		return errors.Internal("stairs action requires a floor lifecycle")
	}

	x, y := a.Actor.Position()
	at := dungeon.Point{X: x, Y: y}
	onDownStairs := at == gc.Map.DownStairs
	onUpStairs := at == gc.Map.UpStairs

	if onDownStairs {
		if a.Downward {
			if gc.Floors.NextFloorExists() {
				if err := gc.Floors.DescendFloor(); err != nil {
					return errors.Wrap(err, "failed to descend floor")
				}
			} else {
				if err := gc.Floors.GenerateFloor(); err != nil {
					return errors.Wrap(err, "failed to generate floor")
				}
			}
			gc.Log.Emit("You descend the staircase.", messagelog.StyleDescend)
		} else {
			return errors.Impossible("You cannot go up this staircase.")
		}
	}

	switch {
	case onUpStairs && a.Downward:
		// A descending player lands on the next floor's up staircase;
		// stay silent here until an input lockout exists.
		// TODO: implement the input lockout
	case onUpStairs:
		if gc.Floors.CurrentFloorNumber() == 1 {
			return errors.Impossible("You have not finished your mission. You may not leave.")
		}
		if err := gc.Floors.AscendFloor(); err != nil {
			return errors.Wrap(err, "failed to ascend floor")
		}
		gc.Log.Emit("You ascend the staircase.", messagelog.StyleDescend)
	}

	return nil
}
