package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/roguelike-api/internal/entities"
	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
	messagelogmock "github.com/KirkDiggler/roguelike-api/internal/messagelog/mock"
)

type ConsumableTestSuite struct {
	suite.Suite

	log    *messagelog.Log
	player *entities.Actor
}

func (s *ConsumableTestSuite) SetupTest() {
	s.log = messagelog.NewLog()
	s.player = entities.NewActor(entities.ActorConfig{
		ID:      "actor-1",
		Name:    "adventurer",
		Fighter: entities.NewFighter(30, 5, 2),
	})
}

func (s *ConsumableTestSuite) TestHealingRecoversAndNarrates() {
	s.player.Fighter.Damage(10)
	potion := &entities.HealingConsumable{Amount: 4}

	err := potion.Activate(s.player, nil, s.log)

	s.Require().NoError(err)
	s.Equal(24, s.player.Fighter.HP)
	s.Require().Equal(1, s.log.Len())
	s.Equal("You consume the item, and recover 4 HP!", s.log.Messages()[0].Text)
	s.Equal(messagelog.StyleHealthRecovered, s.log.Messages()[0].Style)
}

func (s *ConsumableTestSuite) TestHealingNarratesActualRecovery() {
	s.player.Fighter.Damage(2)
	potion := &entities.HealingConsumable{Amount: 4}

	err := potion.Activate(s.player, nil, s.log)

	s.Require().NoError(err)
	s.Equal(30, s.player.Fighter.HP)
	s.Equal("You consume the item, and recover 2 HP!", s.log.Messages()[0].Text)
}

func (s *ConsumableTestSuite) TestHealingAtFullHealthIsImpossible() {
	potion := &entities.HealingConsumable{Amount: 4}

	err := potion.Activate(s.player, nil, s.log)

	s.Require().Error(err)
	s.True(errors.IsImpossible(err))
	s.Equal("Your health is already full.", errors.GetMessage(err))
	s.Equal(30, s.player.Fighter.HP)
	s.Equal(0, s.log.Len())
}

func (s *ConsumableTestSuite) TestHealingEmitsExactlyOnce() {
	ctrl := gomock.NewController(s.T())
	sink := messagelogmock.NewMockSink(ctrl)
	sink.EXPECT().Emit("You consume the item, and recover 4 HP!", messagelog.StyleHealthRecovered)

	s.player.Fighter.Damage(10)
	potion := &entities.HealingConsumable{Amount: 4}

	s.Require().NoError(potion.Activate(s.player, nil, sink))
}

func (s *ConsumableTestSuite) TestHealingWithoutFighterIsInternal() {
	ghost := entities.NewActor(entities.ActorConfig{ID: "actor-2", Name: "ghost"})
	potion := &entities.HealingConsumable{Amount: 4}

	err := potion.Activate(ghost, nil, s.log)

	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func TestConsumableTestSuite(t *testing.T) {
	suite.Run(t, new(ConsumableTestSuite))
}
