package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/betalabs/feedback-intake/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	store, err := New(Config{DSN: ":memory:"})
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) newSubmission(title string, ts time.Time) *model.Submission {
	return &model.Submission{
		TesterName:     "alice",
		SubmissionType: model.TypeFeedback,
		Title:          title,
		Description:    "works well",
		Status:         model.StatusNew,
		Timestamp:      ts,
	}
}

func (s *StorageSuite) TestInsertAssignsIDs() {
	ts := time.Now().UTC().Truncate(time.Second)

	first, err := s.storage.InsertSubmission(s.ctx, s.newSubmission("one", ts))
	s.Require().NoError(err)
	second, err := s.storage.InsertSubmission(s.ctx, s.newSubmission("two", ts))
	s.Require().NoError(err)

	s.Equal(model.SubmissionID(1), first.ID)
	s.Equal(model.SubmissionID(2), second.ID)
}

func (s *StorageSuite) TestRoundTrip() {
	severity := model.SeverityMedium
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	input := s.newSubmission("round trip", ts)
	input.Severity = &severity

	stored, err := s.storage.InsertSubmission(s.ctx, input)
	s.Require().NoError(err)

	got, err := s.storage.GetSubmission(s.ctx, stored.ID)
	s.Require().NoError(err)

	s.Equal(stored.ID, got.ID)
	s.Equal("alice", got.TesterName)
	s.Equal(model.TypeFeedback, got.SubmissionType)
	s.Equal("round trip", got.Title)
	s.Require().NotNil(got.Severity)
	s.Equal(model.SeverityMedium, *got.Severity)
	s.True(ts.Equal(got.Timestamp))
}

func (s *StorageSuite) TestNilSeverityRoundTrips() {
	ts := time.Now().UTC().Truncate(time.Second)

	stored, err := s.storage.InsertSubmission(s.ctx, s.newSubmission("no severity", ts))
	s.Require().NoError(err)

	got, err := s.storage.GetSubmission(s.ctx, stored.ID)
	s.Require().NoError(err)
	s.Nil(got.Severity)
}

func (s *StorageSuite) TestGetSubmissionNotFound() {
	_, err := s.storage.GetSubmission(s.ctx, 1234)
	s.ErrorIs(err, model.ErrSubmissionNotFound)
}

func (s *StorageSuite) TestListOrdersNewestFirstWithIDTieBreak() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, _ = s.storage.InsertSubmission(s.ctx, s.newSubmission("old", base))
	_, _ = s.storage.InsertSubmission(s.ctx, s.newSubmission("tied-first", base.Add(time.Minute)))
	_, _ = s.storage.InsertSubmission(s.ctx, s.newSubmission("tied-second", base.Add(time.Minute)))

	subs, err := s.storage.ListSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(subs, 3)
	s.Equal("tied-second", subs[0].Title)
	s.Equal("tied-first", subs[1].Title)
	s.Equal("old", subs[2].Title)
}

func (s *StorageSuite) TestListEmpty() {
	subs, err := s.storage.ListSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Empty(subs)
}
