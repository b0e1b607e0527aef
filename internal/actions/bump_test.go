package actions_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roguelike-api/internal/actions"
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
	"github.com/KirkDiggler/roguelike-api/internal/testutils"
)

type BumpTestSuite struct {
	suite.Suite

	m      *dungeon.GameMap
	log    *messagelog.Log
	player *entities.Actor
	gc     *actions.Context

	east actions.Direction
}

func (s *BumpTestSuite) SetupTest() {
	s.m = testutils.NewOpenMap(10, 10)
	s.log = messagelog.NewLog()
	s.player = testutils.NewTestActor("player-1", "adventurer")
	s.m.AddEntity(s.player, 5, 5)
	s.gc = &actions.Context{Map: s.m, Log: s.log, Player: s.player}
	s.east = actions.Direction{DX: 1, DY: 0}
}

func (s *BumpTestSuite) TestDispatchPicksMeleeWhenOccupied() {
	orc := testutils.NewTestMonster("actor-1", "orc", 10, 3, 0)
	s.m.AddEntity(orc, 6, 5)

	action := actions.DispatchBump(s.m, s.player, s.east)

	s.IsType(&actions.MeleeAction{}, action)
}

func (s *BumpTestSuite) TestDispatchPicksMovementWhenEmpty() {
	action := actions.DispatchBump(s.m, s.player, s.east)

	s.IsType(&actions.MovementAction{}, action)
}

func (s *BumpTestSuite) TestDispatchPicksMovementOntoCorpse() {
	orc := testutils.NewTestMonster("actor-1", "orc", 10, 3, 0)
	s.m.AddEntity(orc, 6, 5)
	orc.Die()

	action := actions.DispatchBump(s.m, s.player, s.east)

	s.IsType(&actions.MovementAction{}, action)
}

func (s *BumpTestSuite) TestBumpIntoActorAttacks() {
	orc := testutils.NewTestMonster("actor-1", "orc", 10, 3, 0)
	s.m.AddEntity(orc, 6, 5)

	err := actions.NewBump(s.player, s.east).Resolve(s.gc)

	s.Require().NoError(err)
	s.Equal(5, orc.Fighter.HP)
	x, y := s.player.Position()
	s.Equal(5, x, "the attacker does not move")
	s.Equal(5, y)
}

func (s *BumpTestSuite) TestBumpIntoEmptyTileMoves() {
	err := actions.NewBump(s.player, s.east).Resolve(s.gc)

	s.Require().NoError(err)
	x, y := s.player.Position()
	s.Equal(6, x)
	s.Equal(5, y)
	s.Equal(0, s.log.Len(), "movement narrates nothing")
}

func TestBumpTestSuite(t *testing.T) {
	suite.Run(t, new(BumpTestSuite))
}
