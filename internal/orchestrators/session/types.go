package session

import (
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

// ActionKind names a requested action
type ActionKind string

// Action kinds accepted by ResolveAction
const (
	ActionBump       ActionKind = "bump"
	ActionMove       ActionKind = "move"
	ActionMelee      ActionKind = "melee"
	ActionWait       ActionKind = "wait"
	ActionPickup     ActionKind = "pickup"
	ActionUseItem    ActionKind = "use_item"
	ActionDrop       ActionKind = "drop"
	ActionEquip      ActionKind = "equip"
	ActionTakeStairs ActionKind = "take_stairs"
)

// ActionRequest describes one intent for the player. Fields beyond
// Kind apply only to the kinds that need them.
type ActionRequest struct {
	Kind ActionKind

	// DX, DY is the directional offset for bump/move/melee
	DX int
	DY int

	// ItemIndex selects an inventory item for use_item/drop/equip
	ItemIndex int

	// Target optionally aims use_item at a tile
	Target *dungeon.Point

	// Downward selects the descending intent for take_stairs
	Downward bool
}

// NewGameInput defines the request for starting a game
type NewGameInput struct {
	PlayerName string
}

// NewGameOutput defines the response for starting a game
type NewGameOutput struct {
	SessionID      string
	FloorNumber    int
	PlayerPosition dungeon.Point
	Messages       []*messagelog.Message
}

// ResolveActionInput defines the request for resolving one action
type ResolveActionInput struct {
	SessionID string
	Request   *ActionRequest
}

// ResolveActionOutput defines the response for resolving one action.
// Rejected means the action was impossible in the current world state:
// nothing mutated, the turn was not consumed, and RejectionReason
// carries the player-facing explanation.
type ResolveActionOutput struct {
	TurnConsumed    bool
	Rejected        bool
	RejectionReason string
	FloorNumber     int
	PlayerPosition  dungeon.Point
	Messages        []*messagelog.Message
}

// GetMessagesInput defines the request for reading narration history
type GetMessagesInput struct {
	SessionID string
	Limit     int
}

// GetMessagesOutput defines the response for reading narration history
type GetMessagesOutput struct {
	Entries []*messagelog.Entry
}
