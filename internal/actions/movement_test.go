package actions_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roguelike-api/internal/actions"
	"github.com/KirkDiggler/roguelike-api/internal/dungeon"
	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
	"github.com/KirkDiggler/roguelike-api/internal/testutils"
)

type MovementTestSuite struct {
	suite.Suite

	m      *dungeon.GameMap
	log    *messagelog.Log
	player *entities.Actor
	gc     *actions.Context
}

func (s *MovementTestSuite) SetupTest() {
	s.m = testutils.NewOpenMap(10, 10)
	s.log = messagelog.NewLog()
	s.player = testutils.NewTestActor("player-1", "adventurer")
	s.m.AddEntity(s.player, 5, 5)
	s.gc = &actions.Context{Map: s.m, Log: s.log, Player: s.player}
}

func (s *MovementTestSuite) position() dungeon.Point {
	x, y := s.player.Position()
	return dungeon.Point{X: x, Y: y}
}

func (s *MovementTestSuite) TestMoveOntoOpenTile() {
	err := actions.NewMovement(s.player, actions.Direction{DX: 1, DY: 0}).Resolve(s.gc)

	s.Require().NoError(err)
	s.Equal(dungeon.Point{X: 6, Y: 5}, s.position())
}

func (s *MovementTestSuite) TestMoveOffTheMapIsBlocked() {
	s.player.SetPosition(9, 5)

	err := actions.NewMovement(s.player, actions.Direction{DX: 1, DY: 0}).Resolve(s.gc)

	s.Require().Error(err)
	s.True(errors.IsImpossible(err))
	s.Equal("That way is blocked.", errors.GetMessage(err))
	s.Equal(dungeon.Point{X: 9, Y: 5}, s.position())
}

func (s *MovementTestSuite) TestMoveIntoWallIsBlocked() {
	s.m.Tiles[6][5] = dungeon.TileWall

	err := actions.NewMovement(s.player, actions.Direction{DX: 1, DY: 0}).Resolve(s.gc)

	s.Require().Error(err)
	s.True(errors.IsImpossible(err))
	s.Equal(dungeon.Point{X: 5, Y: 5}, s.position())
}

func (s *MovementTestSuite) TestMoveIntoBlockingEntityIsBlocked() {
	orc := testutils.NewTestMonster("actor-1", "orc", 10, 3, 0)
	s.m.AddEntity(orc, 6, 5)

	err := actions.NewMovement(s.player, actions.Direction{DX: 1, DY: 0}).Resolve(s.gc)

	s.Require().Error(err)
	s.True(errors.IsImpossible(err))
	s.Equal(dungeon.Point{X: 5, Y: 5}, s.position())
}

func (s *MovementTestSuite) TestMoveOntoCorpseSucceeds() {
	orc := testutils.NewTestMonster("actor-1", "orc", 10, 3, 0)
	s.m.AddEntity(orc, 6, 5)
	orc.Die()

	err := actions.NewMovement(s.player, actions.Direction{DX: 1, DY: 0}).Resolve(s.gc)

	s.Require().NoError(err)
	s.Equal(dungeon.Point{X: 6, Y: 5}, s.position())
}

func (s *MovementTestSuite) TestMoveOntoItemSucceeds() {
	potion := testutils.NewPotion("item-1", 4)
	s.m.AddEntity(potion, 6, 5)

	err := actions.NewMovement(s.player, actions.Direction{DX: 1, DY: 0}).Resolve(s.gc)

	s.Require().NoError(err)
	s.Equal(dungeon.Point{X: 6, Y: 5}, s.position())
}

func (s *MovementTestSuite) TestDiagonalMove() {
	err := actions.NewMovement(s.player, actions.Direction{DX: -1, DY: -1}).Resolve(s.gc)

	s.Require().NoError(err)
	s.Equal(dungeon.Point{X: 4, Y: 4}, s.position())
}

func TestMovementTestSuite(t *testing.T) {
	suite.Run(t, new(MovementTestSuite))
}
