package messagelog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roguelike-api/internal/messagelog"
)

type LogTestSuite struct {
	suite.Suite

	log *messagelog.Log
}

func (s *LogTestSuite) SetupTest() {
	s.log = messagelog.NewLog()
}

func (s *LogTestSuite) TestEmitAppendsInOrder() {
	s.log.Emit("Hello and welcome, adventurer, to yet another dungeon!", messagelog.StyleWelcome)
	s.log.Emit("You descend the staircase.", messagelog.StyleDescend)

	msgs := s.log.Messages()
	s.Require().Len(msgs, 2)
	s.Equal(messagelog.StyleWelcome, msgs[0].Style)
	s.Equal("You descend the staircase.", msgs[1].Text)
}

func (s *LogTestSuite) TestConsecutiveIdenticalMessagesStack() {
	s.log.Emit("That way is blocked.", messagelog.StyleImpossible)
	s.log.Emit("That way is blocked.", messagelog.StyleImpossible)
	s.log.Emit("That way is blocked.", messagelog.StyleImpossible)

	msgs := s.log.Messages()
	s.Require().Len(msgs, 1)
	s.Equal(3, msgs[0].Count)
	s.Equal("That way is blocked. (x3)", msgs[0].FullText())
}

func (s *LogTestSuite) TestDifferentStyleBreaksStacking() {
	s.log.Emit("That way is blocked.", messagelog.StyleImpossible)
	s.log.Emit("That way is blocked.", messagelog.StyleInvalid)

	s.Equal(2, s.log.Len())
}

func (s *LogTestSuite) TestInterveningMessageBreaksStacking() {
	s.log.Emit("That way is blocked.", messagelog.StyleImpossible)
	s.log.Emit("You dropped the dagger.", messagelog.StyleDefault)
	s.log.Emit("That way is blocked.", messagelog.StyleImpossible)

	s.Equal(3, s.log.Len())
	s.Equal("That way is blocked.", s.log.Messages()[2].FullText())
}

func (s *LogTestSuite) TestSince() {
	s.log.Emit("first", messagelog.StyleDefault)
	mark := s.log.Len()
	s.log.Emit("second", messagelog.StyleDefault)
	s.log.Emit("third", messagelog.StyleDefault)

	since := s.log.Since(mark)
	s.Require().Len(since, 2)
	s.Equal("second", since[0].Text)
	s.Equal("third", since[1].Text)

	s.Empty(s.log.Since(s.log.Len()))
	s.Nil(s.log.Since(-1))
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}
