package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roguelike-api/internal/entities"
)

type FighterTestSuite struct {
	suite.Suite
}

func (s *FighterTestSuite) TestNewFighterStartsAtFullHealth() {
	f := entities.NewFighter(16, 4, 1)

	s.Equal(16, f.HP)
	s.Equal(16, f.MaxHP)
	s.Equal(4, f.BasePower)
	s.Equal(1, f.BaseDefense)
}

func (s *FighterTestSuite) TestDamageClampsAtZero() {
	f := entities.NewFighter(10, 3, 0)

	f.Damage(4)
	s.Equal(6, f.HP)

	f.Damage(100)
	s.Equal(0, f.HP)
}

func (s *FighterTestSuite) TestHealReturnsRecoveredAmount() {
	f := entities.NewFighter(30, 5, 2)
	f.Damage(10)

	s.Equal(4, f.Heal(4))
	s.Equal(24, f.HP)
}

func (s *FighterTestSuite) TestHealCapsAtMaxHP() {
	f := entities.NewFighter(30, 5, 2)
	f.Damage(2)

	s.Equal(2, f.Heal(100))
	s.Equal(30, f.HP)
}

func (s *FighterTestSuite) TestHealAtFullHealthRecoversNothing() {
	f := entities.NewFighter(30, 5, 2)

	s.Equal(0, f.Heal(4))
	s.Equal(30, f.HP)
}

func TestFighterTestSuite(t *testing.T) {
	suite.Run(t, new(FighterTestSuite))
}
