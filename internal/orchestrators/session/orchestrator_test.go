package session_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
	messagelogmock "github.com/KirkDiggler/roguelike-api/internal/messagelog/mock"
	"github.com/KirkDiggler/roguelike-api/internal/orchestrators/session"
	"github.com/KirkDiggler/roguelike-api/internal/pkg/clock"
	"github.com/KirkDiggler/roguelike-api/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/roguelike-api/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/roguelike-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctx  context.Context
	repo *messagelog.InMemoryRepository
	svc  session.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = messagelog.NewInMemory(clock.New())

	svc, err := session.NewOrchestrator(&session.Config{
		IDGenerator: idgen.NewSequential("id"),
		Roller:      testutils.NewSeededRoller(42),
		MessageRepo: s.repo,
	})
	s.Require().NoError(err)
	s.svc = svc
}

// newGame starts a session. The player always begins on the first
// floor's up staircase, in a room the generator never populates.
func (s *OrchestratorTestSuite) newGame() *session.NewGameOutput {
	s.T().Helper()
	out, err := s.svc.NewGame(s.ctx, &session.NewGameInput{PlayerName: "tester"})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestNewGameStartsOnFirstFloor() {
	out := s.newGame()

	s.NotEmpty(out.SessionID)
	s.Equal(1, out.FloorNumber)
	s.Require().Len(out.Messages, 1)
	s.Equal("Hello and welcome, adventurer, to yet another dungeon!", out.Messages[0].Text)
	s.Equal(messagelog.StyleWelcome, out.Messages[0].Style)
}

func (s *OrchestratorTestSuite) TestNewGamePersistsTheWelcome() {
	out := s.newGame()

	history, err := s.svc.GetMessages(s.ctx, &session.GetMessagesInput{SessionID: out.SessionID})
	s.Require().NoError(err)
	s.Require().Len(history.Entries, 1)
	s.Equal(messagelog.StyleWelcome, history.Entries[0].Message.Style)
}

func (s *OrchestratorTestSuite) TestWaitConsumesTheTurn() {
	game := s.newGame()

	out, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionWait},
	})

	s.Require().NoError(err)
	s.True(out.TurnConsumed)
	s.False(out.Rejected)
	s.Empty(out.Messages)
	s.Equal(game.PlayerPosition, out.PlayerPosition)
}

func (s *OrchestratorTestSuite) TestPickupOnEmptyTileIsRejected() {
	game := s.newGame()

	out, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionPickup},
	})

	s.Require().NoError(err, "a rejection is a result, not a failure")
	s.False(out.TurnConsumed)
	s.True(out.Rejected)
	s.Equal("There is nothing here to pick up.", out.RejectionReason)
	s.Require().Len(out.Messages, 1)
	s.Equal(messagelog.StyleImpossible, out.Messages[0].Style)
}

func (s *OrchestratorTestSuite) TestAscendFromFirstFloorIsRejected() {
	game := s.newGame()

	out, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionTakeStairs, Downward: false},
	})

	s.Require().NoError(err)
	s.True(out.Rejected)
	s.Equal("You have not finished your mission. You may not leave.", out.RejectionReason)
	s.Equal(1, out.FloorNumber)
}

func (s *OrchestratorTestSuite) TestDescendIntentOnUpStairsIsSilent() {
	game := s.newGame()

	out, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionTakeStairs, Downward: true},
	})

	s.Require().NoError(err)
	s.True(out.TurnConsumed)
	s.Empty(out.Messages)
	s.Equal(1, out.FloorNumber)
}

func (s *OrchestratorTestSuite) TestBumpResolvesToExactlyOneOutcome() {
	game := s.newGame()

	out, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionBump, DX: 1, DY: 0},
	})

	s.Require().NoError(err)
	s.NotEqual(out.TurnConsumed, out.Rejected)
}

func (s *OrchestratorTestSuite) TestRejectionsArePersisted() {
	game := s.newGame()

	_, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionPickup},
	})
	s.Require().NoError(err)

	history, err := s.svc.GetMessages(s.ctx, &session.GetMessagesInput{SessionID: game.SessionID})
	s.Require().NoError(err)
	s.Require().Len(history.Entries, 2)
	s.Equal("There is nothing here to pick up.", history.Entries[1].Message.Text)
}

func (s *OrchestratorTestSuite) TestUseItemWithBadIndexFails() {
	game := s.newGame()

	_, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionUseItem, ItemIndex: 0},
	})

	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestUnknownActionKindFails() {
	game := s.newGame()

	_, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: "dance"},
	})

	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestUnknownSessionIsNotFound() {
	_, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: "session-missing",
		Request:   &session.ActionRequest{Kind: session.ActionWait},
	})

	s.Require().Error(err)
	s.Equal(errors.CodeNotFound, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestSessionsAreIsolated() {
	first := s.newGame()
	second := s.newGame()

	s.NotEqual(first.SessionID, second.SessionID)

	_, err := s.svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: first.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionPickup},
	})
	s.Require().NoError(err)

	history, err := s.svc.GetMessages(s.ctx, &session.GetMessagesInput{SessionID: second.SessionID})
	s.Require().NoError(err)
	s.Len(history.Entries, 1, "only the welcome")
}

func (s *OrchestratorTestSuite) TestIDsComeFromTheInjectedGenerator() {
	ctrl := gomock.NewController(s.T())
	gen := idgenmock.NewMockGenerator(ctrl)
	seq := idgen.NewSequential("fixed")
	gen.EXPECT().Generate().DoAndReturn(seq.Generate).AnyTimes()

	svc, err := session.NewOrchestrator(&session.Config{
		IDGenerator: gen,
		Roller:      testutils.NewSeededRoller(42),
		MessageRepo: s.repo,
	})
	s.Require().NoError(err)

	out, err := svc.NewGame(s.ctx, &session.NewGameInput{})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(out.SessionID, "fixed_"))
}

func (s *OrchestratorTestSuite) TestPersistFailureDoesNotFailResolution() {
	ctrl := gomock.NewController(s.T())
	repo := messagelogmock.NewMockRepository(ctrl)
	repo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("storage down")).
		AnyTimes()

	svc, err := session.NewOrchestrator(&session.Config{
		IDGenerator: idgen.NewSequential("id"),
		Roller:      testutils.NewSeededRoller(42),
		MessageRepo: repo,
	})
	s.Require().NoError(err)

	game, err := svc.NewGame(s.ctx, &session.NewGameInput{})
	s.Require().NoError(err, "losing narration history must not lose the game")

	out, err := svc.ResolveAction(s.ctx, &session.ResolveActionInput{
		SessionID: game.SessionID,
		Request:   &session.ActionRequest{Kind: session.ActionPickup},
	})
	s.Require().NoError(err)
	s.True(out.Rejected)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := session.NewOrchestrator(&session.Config{
		IDGenerator: idgen.NewSequential("id"),
	})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = session.NewOrchestrator(nil)
	s.Require().Error(err)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
