// Package session implements the session orchestrator: the turn
// boundary that converts action requests into resolved actions against
// a per-session game world.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/roguelike-api/internal/actions"
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
	"github.com/KirkDiggler/roguelike-api/internal/pkg/idgen"
)

// Default world tuning
const (
	defaultMapWidth  = 80
	defaultMapHeight = 43
	defaultMaxRooms  = 30
	defaultRoomMin   = 6
	defaultRoomMax   = 10

	defaultMaxMonstersPerRoom = 2
	defaultMaxItemsPerRoom    = 2

	playerMaxHP      = 30
	playerPower      = 5
	playerDefense    = 2
	playerInventory  = 26
	defaultPlayerTag = "adventurer"

	welcomeText = "Hello and welcome, adventurer, to yet another dungeon!"
)

// Service defines the interface for session operations
type Service interface {
	// NewGame creates a world with its first floor and a player on it
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// ResolveAction resolves exactly one action for the session's player
	ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error)

	// GetMessages returns the session's persisted narration history
	GetMessages(ctx context.Context, input *GetMessagesInput) (*GetMessagesOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	IDGenerator idgen.Generator
	Roller      dice.Roller
	MessageRepo messagelog.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.MessageRepo == nil {
		vb.RequiredField("MessageRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen       idgen.Generator
	roller      dice.Roller
	messageRepo messagelog.Repository

	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// sessionState holds one running game. Its mutex serializes
// resolutions: exactly one action mutates a world at a time.
type sessionState struct {
	mu    sync.Mutex
	world *dungeon.World
	log   *messagelog.Log
}

// NewOrchestrator creates a new session orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		idGen:       cfg.IDGenerator,
		roller:      cfg.Roller,
		messageRepo: cfg.MessageRepo,
		sessions:    make(map[string]*sessionState),
	}, nil
}

// NewGame creates a world with its first floor and a player on it
func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := input.PlayerName
	if name == "" {
		name = defaultPlayerTag
	}

	player := entities.NewActor(entities.ActorConfig{
		ID:        o.idGen.Generate(),
		Name:      name,
		Fighter:   entities.NewFighter(playerMaxHP, playerPower, playerDefense),
		Inventory: entities.NewInventory(playerInventory),
		Equipment: entities.NewEquipment(),
	})

	generator, err := dungeon.NewGenerator(&dungeon.GeneratorConfig{
		Roller:             o.roller,
		IDGenerator:        o.idGen,
		MapWidth:           defaultMapWidth,
		MapHeight:          defaultMapHeight,
		MaxRooms:           defaultMaxRooms,
		RoomMinSize:        defaultRoomMin,
		RoomMaxSize:        defaultRoomMax,
		MaxMonstersPerRoom: defaultMaxMonstersPerRoom,
		MaxItemsPerRoom:    defaultMaxItemsPerRoom,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create floor generator")
	}

	world, err := dungeon.NewWorld(&dungeon.WorldConfig{
		Generator: generator,
		Player:    player,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world")
	}

	if err := world.GenerateFloor(); err != nil {
		return nil, errors.Wrap(err, "failed to generate first floor")
	}

	sessionID := o.idGen.Generate()
	state := &sessionState{
		world: world,
		log:   messagelog.NewLog(),
	}
	state.log.Emit(welcomeText, messagelog.StyleWelcome)

	o.mu.Lock()
	o.sessions[sessionID] = state
	o.mu.Unlock()

	o.persist(ctx, sessionID, state.log.Since(0))

	x, y := player.Position()
	slog.Info("new game started",
		"session_id", sessionID,
		"player", name,
		"floor", world.CurrentFloorNumber(),
	)

	return &NewGameOutput{
		SessionID:      sessionID,
		FloorNumber:    world.CurrentFloorNumber(),
		PlayerPosition: dungeon.Point{X: x, Y: y},
		Messages:       state.log.Since(0),
	}, nil
}

// ResolveAction resolves exactly one action for the session's player
func (o *orchestrator) ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Request == nil {
		return nil, errors.InvalidArgument("action request is required")
	}

	state, err := o.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	world := state.world
	player := world.Player()

	if !player.IsAlive() {
		return nil, errors.FailedPrecondition("the player is dead")
	}

	action, err := o.buildAction(state, input.Request)
	if err != nil {
		return nil, err
	}

	gc := &actions.Context{
		Map:    world.Map(),
		Floors: world,
		Log:    state.log,
		Player: player,
	}
	if err := gc.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid action context")
	}

	mark := state.log.Len()
	output := &ResolveActionOutput{}

	switch resolveErr := action.Resolve(gc); {
	case resolveErr == nil:
		output.TurnConsumed = true
	case errors.IsImpossible(resolveErr):
		reason := errors.GetMessage(resolveErr)
		state.log.Emit(reason, messagelog.StyleImpossible)
		output.Rejected = true
		output.RejectionReason = reason
	default:
		return nil, errors.Wrap(resolveErr, "action resolution failed")
	}

	o.persist(ctx, input.SessionID, state.log.Since(mark))

	x, y := player.Position()
	output.FloorNumber = world.CurrentFloorNumber()
	output.PlayerPosition = dungeon.Point{X: x, Y: y}
	output.Messages = state.log.Since(mark)
	return output, nil
}

// GetMessages returns the session's persisted narration history
func (o *orchestrator) GetMessages(ctx context.Context, input *GetMessagesInput) (*GetMessagesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.messageRepo.List(ctx, &messagelog.ListInput{
		SessionID: input.SessionID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return &GetMessagesOutput{Entries: out.Entries}, nil
}

func (o *orchestrator) session(id string) (*sessionState, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	state, ok := o.sessions[id]
	if !ok {
		return nil, errors.NotFoundf("session %s not found", id)
	}
	return state, nil
}

// buildAction converts a request into a concrete action bound to the
// session's player
func (o *orchestrator) buildAction(state *sessionState, req *ActionRequest) (actions.Action, error) {
	player := state.world.Player()
	dir := actions.Direction{DX: req.DX, DY: req.DY}

	switch req.Kind {
	case ActionBump:
		return actions.NewBump(player, dir), nil
	case ActionMove:
		return actions.NewMovement(player, dir), nil
	case ActionMelee:
		return actions.NewMelee(player, dir), nil
	case ActionWait:
		return actions.NewWait(player), nil
	case ActionPickup:
		return actions.NewPickup(player), nil
	case ActionTakeStairs:
		return actions.NewTakeStairs(player, req.Downward), nil
	case ActionUseItem, ActionDrop, ActionEquip:
		item, err := o.heldItem(player, req.ItemIndex)
		if err != nil {
			return nil, err
		}
		switch req.Kind {
		case ActionUseItem:
			return actions.NewItemAction(player, item, req.Target), nil
		case ActionDrop:
			return actions.NewDrop(player, item), nil
		default:
			return actions.NewEquip(player, item), nil
		}
	default:
		return nil, errors.InvalidArgumentf("unknown action kind: %s", req.Kind)
	}
}

func (o *orchestrator) heldItem(player *entities.Actor, index int) (*entities.Item, error) {
	if player.Inventory == nil {
		return nil, errors.FailedPrecondition("player has no inventory")
	}
	item, ok := player.Inventory.At(index)
	if !ok {
		return nil, errors.InvalidArgumentf("no inventory item at index %d", index)
	}
	return item, nil
}

// persist appends narration to the repository. Narration storage never
// fails a resolution; failures are logged and play continues.
func (o *orchestrator) persist(ctx context.Context, sessionID string, messages []*messagelog.Message) {
	for _, msg := range messages {
		if _, err := o.messageRepo.Append(ctx, &messagelog.AppendInput{
			SessionID: sessionID,
			Message:   msg,
		}); err != nil {
			slog.Error("failed to persist narration message",
				"session_id", sessionID,
				"error", err,
			)
			return
		}
	}
}
