package memory

import (
	"context"
	"sync"
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
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSubmission(title string, ts time.Time) *model.Submission {
	return &model.Submission{
		TesterName:     "alice",
		SubmissionType: model.TypeBug,
		Title:          title,
		Description:    "something broke",
		Status:         model.StatusNew,
		Timestamp:      ts,
	}
}

func (s *StorageSuite) TestInsertAssignsMonotonicIDs() {
	ts := time.Now().UTC()

	first, err := s.storage.InsertSubmission(s.ctx, s.newSubmission("one", ts))
	s.Require().NoError(err)
	second, err := s.storage.InsertSubmission(s.ctx, s.newSubmission("two", ts))
	s.Require().NoError(err)

	s.Equal(model.SubmissionID(1), first.ID)
	s.Equal(model.SubmissionID(2), second.ID)
}

func (s *StorageSuite) TestInsertDoesNotMutateInput() {
	ts := time.Now().UTC()
	input := s.newSubmission("one", ts)

	stored, err := s.storage.InsertSubmission(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(model.SubmissionID(0), input.ID)
	s.Equal(model.SubmissionID(1), stored.ID)
}

func (s *StorageSuite) TestGetSubmissionRoundTrip() {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stored, err := s.storage.InsertSubmission(s.ctx, s.newSubmission("one", ts))
	s.Require().NoError(err)

	got, err := s.storage.GetSubmission(s.ctx, stored.ID)
	s.Require().NoError(err)
	s.Equal(stored, got)
}

func (s *StorageSuite) TestGetSubmissionNotFound() {
	_, err := s.storage.GetSubmission(s.ctx, 99)
	s.ErrorIs(err, model.ErrSubmissionNotFound)
}

func (s *StorageSuite) TestListOrdersByTimestampDescending() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, _ = s.storage.InsertSubmission(s.ctx, s.newSubmission("oldest", base))
	_, _ = s.storage.InsertSubmission(s.ctx, s.newSubmission("newest", base.Add(2*time.Minute)))
	_, _ = s.storage.InsertSubmission(s.ctx, s.newSubmission("middle", base.Add(time.Minute)))

	subs, err := s.storage.ListSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(subs, 3)
	s.Equal("newest", subs[0].Title)
	s.Equal("middle", subs[1].Title)
	s.Equal("oldest", subs[2].Title)
}

func (s *StorageSuite) TestListBreaksTiesByIDDescending() {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, _ = s.storage.InsertSubmission(s.ctx, s.newSubmission("same", ts))
	}

	subs, err := s.storage.ListSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(subs, 3)
	s.Equal(model.SubmissionID(3), subs[0].ID)
	s.Equal(model.SubmissionID(2), subs[1].ID)
	s.Equal(model.SubmissionID(1), subs[2].ID)
}

func (s *StorageSuite) TestConcurrentInsertsGetUniqueIDs() {
	const n = 50
	ts := time.Now().UTC()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.storage.InsertSubmission(s.ctx, s.newSubmission("concurrent", ts))
			s.NoError(err)
		}()
	}
	wg.Wait()

	subs, err := s.storage.ListSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(subs, n)

	seen := make(map[model.SubmissionID]bool, n)
	for _, sub := range subs {
		s.False(seen[sub.ID], "duplicate id %d", sub.ID)
		seen[sub.ID] = true
	}
}
