package eventlog

import (
	"fmt"
	"testing"

	"github.com/fieldside/scorekeeper/internal/models"
	"github.com/stretchr/testify/suite"
)

// seqUUID hands out predictable IDs so ordering assertions stay readable
type seqUUID struct {
	n int
}

func (s *seqUUID) NewUUID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type LogTestSuite struct {
	suite.Suite
	log *Log
}

func (s *LogTestSuite) SetupTest() {
	log, err := New(&Config{
		UUIDGenerator: &seqUUID{},
	})
	s.Require().NoError(err)
	s.log = log
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (s *LogTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *LogTestSuite) TestAppendAssignsIDAndSeq() {
	id1 := s.log.Append(models.Event{Kind: models.EventKindMatchStart, TeamSide: models.TeamSideNone})
	id2 := s.log.Append(models.Event{Kind: models.EventKindScore, TeamSide: models.TeamSideA})

	s.Equal("id-1", id1)
	s.Equal("id-2", id2)

	events := s.log.All()
	s.Require().Len(events, 2)
	s.Equal(0, events[0].Seq)
	s.Equal(1, events[1].Seq)
	s.Equal(models.EventKindMatchStart, events[0].Kind)
	s.Equal(models.EventKindScore, events[1].Kind)
}

func (s *LogTestSuite) TestUpdateScoreFields() {
	id := s.log.Append(models.Event{
		Kind:     models.EventKindScore,
		TeamSide: models.TeamSideA,
		Scorer:   "Alice",
		Assistor: "Bob",
	})

	scorer := "Carol"
	assistor := models.AssistCallahan
	ok := s.log.Update(id, Update{Scorer: &scorer, Assistor: &assistor})
	s.True(ok)

	event := s.log.Get(id)
	s.Require().NotNil(event)
	s.Equal("Carol", event.Scorer)
	s.Equal(models.AssistCallahan, event.Assistor)
	s.Equal(models.TeamSideA, event.TeamSide)
}

func (s *LogTestSuite) TestUpdateMissingIDReturnsFalse() {
	ok := s.log.Update("nope", Update{})
	s.False(ok)
}

func (s *LogTestSuite) TestRemovePreservesOrder() {
	id1 := s.log.Append(models.Event{Kind: models.EventKindScore, TeamSide: models.TeamSideA})
	id2 := s.log.Append(models.Event{Kind: models.EventKindScore, TeamSide: models.TeamSideB})
	id3 := s.log.Append(models.Event{Kind: models.EventKindScore, TeamSide: models.TeamSideA})

	removed := s.log.Remove(id2)
	s.Require().NotNil(removed)
	s.Equal(id2, removed.ID)

	events := s.log.All()
	s.Require().Len(events, 2)
	s.Equal(id1, events[0].ID)
	s.Equal(id3, events[1].ID)
	// seq numbers are not renumbered
	s.Equal(0, events[0].Seq)
	s.Equal(2, events[1].Seq)
}

func (s *LogTestSuite) TestRemoveMissingIDReturnsNil() {
	s.Nil(s.log.Remove("nope"))
}

func (s *LogTestSuite) TestAllReturnsCopy() {
	s.log.Append(models.Event{Kind: models.EventKindScore, TeamSide: models.TeamSideA})

	events := s.log.All()
	events[0].Scorer = "mutated"

	s.Equal("", s.log.All()[0].Scorer)
}

func (s *LogTestSuite) TestClearKeepsSeqAdvancing() {
	s.log.Append(models.Event{Kind: models.EventKindScore})
	s.log.Append(models.Event{Kind: models.EventKindScore})
	s.log.Clear()

	s.Equal(0, s.log.Len())

	s.log.Append(models.Event{Kind: models.EventKindScore})
	s.Equal(2, s.log.All()[0].Seq)
}

func (s *LogTestSuite) TestReplaceRestoresSeqCounter() {
	s.log.Replace([]models.Event{
		{ID: "a", Seq: 0, Kind: models.EventKindMatchStart},
		{ID: "b", Seq: 4, Kind: models.EventKindScore},
	}, 0)

	s.Equal(2, s.log.Len())
	s.Equal(5, s.log.NextSeq())
}
