package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
	"github.com/KirkDiggler/roguelike-api/internal/orchestrators/session"
	"github.com/KirkDiggler/roguelike-api/internal/pkg/idgen"
	"github.com/KirkDiggler/roguelike-api/internal/redis"
)

var (
	simTurns      int
	simPlayerName string
	simRedisAddr  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted dungeon walk",
	Long:  `Start a session and resolve a random bump walk through the dungeon, printing the narration as it happens.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simTurns, "turns", 50, "number of turns to resolve")
	simulateCmd.Flags().StringVar(&simPlayerName, "player", "adventurer", "player name")
	simulateCmd.Flags().StringVar(&simRedisAddr, "redis-addr", "", "redis address for narration history (empty for in-memory)")
}

// directions a bump walk can pick from, one per d8 face
var walkDirections = [8]struct{ dx, dy int }{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

func runSimulate(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repo, err := buildMessageRepo()
	if err != nil {
		return fmt.Errorf("failed to build message repository: %w", err)
	}

	svc, err := session.NewOrchestrator(&session.Config{
		IDGenerator: idgen.NewUUID(""),
		Roller:      dice.DefaultRoller,
		MessageRepo: repo,
	})
	if err != nil {
		return fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	game, err := svc.NewGame(ctx, &session.NewGameInput{PlayerName: simPlayerName})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	for _, msg := range game.Messages {
		fmt.Println(msg.FullText())
	}

	for turn := 1; turn <= simTurns; turn++ {
		req, err := rollWalkRequest()
		if err != nil {
			return fmt.Errorf("failed to roll a walk step: %w", err)
		}

		out, err := svc.ResolveAction(ctx, &session.ResolveActionInput{
			SessionID: game.SessionID,
			Request:   req,
		})
		if err != nil {
			return fmt.Errorf("turn %d failed: %w", turn, err)
		}

		for _, msg := range out.Messages {
			fmt.Println(msg.FullText())
		}

		slog.Debug("turn resolved",
			"turn", turn,
			"kind", req.Kind,
			"consumed", out.TurnConsumed,
			"rejected", out.Rejected,
			"floor", out.FloorNumber,
			"x", out.PlayerPosition.X,
			"y", out.PlayerPosition.Y,
		)
	}

	history, err := svc.GetMessages(ctx, &session.GetMessagesInput{SessionID: game.SessionID})
	if err != nil {
		return fmt.Errorf("failed to read narration history: %w", err)
	}

	slog.Info("simulation finished",
		"session_id", game.SessionID,
		"turns", simTurns,
		"messages", len(history.Entries),
	)
	return nil
}

// rollWalkRequest picks the next intent: mostly bumps in a random
// direction, with the occasional wait and stair attempt mixed in
func rollWalkRequest() (*session.ActionRequest, error) {
	kind, err := dice.DefaultRoller.Roll(10)
	if err != nil {
		return nil, err
	}

	switch {
	case kind <= 7:
		face, err := dice.DefaultRoller.Roll(len(walkDirections))
		if err != nil {
			return nil, err
		}
		d := walkDirections[face-1]
		return &session.ActionRequest{Kind: session.ActionBump, DX: d.dx, DY: d.dy}, nil
	case kind <= 8:
		return &session.ActionRequest{Kind: session.ActionPickup}, nil
	case kind <= 9:
		return &session.ActionRequest{Kind: session.ActionTakeStairs, Downward: true}, nil
	default:
		return &session.ActionRequest{Kind: session.ActionWait}, nil
	}
}

func buildMessageRepo() (messagelog.Repository, error) {
	if simRedisAddr == "" {
		return messagelog.NewInMemory(nil), nil
	}

	client, err := redis.NewClient(simRedisAddr, nil)
	if err != nil {
		return nil, err
	}
	return messagelog.NewRedis(&messagelog.RedisConfig{Client: client})
}
