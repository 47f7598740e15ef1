package submission

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/betalabs/feedback-intake/internal/dependencies/mocks"
	"github.com/betalabs/feedback-intake/internal/model"
	"github.com/betalabs/feedback-intake/internal/storage/memory"
	"github.com/betalabs/feedback-intake/internal/testutil"
)

// fakeMirror records appends and returns a configurable outcome
type fakeMirror struct {
	available bool
	succeed   bool
	appended  []*model.Submission
}

func (f *fakeMirror) Available() bool {
	return f.available
}

func (f *fakeMirror) Append(_ context.Context, sub *model.Submission) bool {
	if !f.available {
		return false
	}
	f.appended = append(f.appended, sub)
	return f.succeed
}

// failingStorage rejects every insert
type failingStorage struct{}

func (f *failingStorage) InsertSubmission(_ context.Context, _ *model.Submission) (*model.Submission, error) {
	return nil, errors.New("disk full")
}

func (f *failingStorage) ListSubmissions(_ context.Context) ([]*model.Submission, error) {
	return nil, nil
}

func (f *failingStorage) GetSubmission(_ context.Context, _ model.SubmissionID) (*model.Submission, error) {
	return nil, model.ErrSubmissionNotFound
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	mirror  *fakeMirror
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.mirror = &fakeMirror{available: true, succeed: true}
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.mirror, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func validInput() Input {
	return Input{
		TesterName:     "alice",
		SubmissionType: model.TypeBug,
		Title:          "Crash",
		Description:    "App crashes on start",
	}
}

// Submit tests

func (s *ServiceSuite) TestSubmitSucceeds() {
	result, err := s.service.Submit(s.ctx, validInput())
	s.Require().NoError(err)

	s.Equal(model.SubmissionID(1), result.Submission.ID)
	s.Equal("alice", result.Submission.TesterName)
	s.Equal(model.TypeBug, result.Submission.SubmissionType)
	s.True(result.SheetsSynced)
}

func (s *ServiceSuite) TestSubmitDefaultsStatusAndSeverity() {
	result, err := s.service.Submit(s.ctx, validInput())
	s.Require().NoError(err)

	s.Equal(model.StatusNew, result.Submission.Status)
	s.Nil(result.Submission.Severity)
}

func (s *ServiceSuite) TestSubmitKeepsExplicitStatusAndSeverity() {
	severity := model.SeverityHigh
	input := validInput()
	input.Severity = &severity
	input.Status = model.StatusInProgress

	result, err := s.service.Submit(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(model.StatusInProgress, result.Submission.Status)
	s.Require().NotNil(result.Submission.Severity)
	s.Equal(model.SeverityHigh, *result.Submission.Severity)
}

func (s *ServiceSuite) TestSubmitAssignsUTCTimestamp() {
	result, err := s.service.Submit(s.ctx, validInput())
	s.Require().NoError(err)

	s.Equal(s.clock.CurrentTime, result.Submission.Timestamp)
	s.Equal(time.UTC, result.Submission.Timestamp.Location())
}

func (s *ServiceSuite) TestSubmitValidatesFieldsInOrder() {
	cases := []struct {
		name  string
		input Input
		field string
	}{
		{"missing tester_name", Input{}, "tester_name"},
		{"missing submission_type", Input{TesterName: "alice"}, "submission_type"},
		{"missing title", Input{TesterName: "alice", SubmissionType: "Bug"}, "title"},
		{"missing description", Input{TesterName: "alice", SubmissionType: "Bug", Title: "Crash"}, "description"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Submit(s.ctx, tc.input)

			var ve *model.ValidationError
			s.Require().ErrorAs(err, &ve)
			s.Equal(tc.field, ve.Field)
		})
	}
}

func (s *ServiceSuite) TestSubmitRejectsOverlongTitle() {
	input := validInput()
	input.Title = strings.Repeat("é", model.MaxTitleLength+1)

	_, err := s.service.Submit(s.ctx, input)

	var ve *model.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("title", ve.Field)
}

func (s *ServiceSuite) TestSubmitTitleBoundCountsCharactersNotBytes() {
	// 150 two-byte characters: under the bound even though over 200 bytes
	input := validInput()
	input.Title = strings.Repeat("é", 150)

	result, err := s.service.Submit(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(input.Title, result.Submission.Title)
}

func (s *ServiceSuite) TestInvalidSubmitHasNoSideEffects() {
	_, err := s.service.Submit(s.ctx, Input{})
	s.Require().Error(err)

	subs, _ := s.storage.ListSubmissions(s.ctx)
	s.Empty(subs)
	s.Empty(s.mirror.appended)
}

func (s *ServiceSuite) TestStorageFailureAbortsSubmitWithoutMirror() {
	service := New(&failingStorage{}, s.mirror, s.clock, testutil.NopLogger())

	_, err := service.Submit(s.ctx, validInput())
	s.Require().Error(err)
	s.ErrorContains(err, "persisting submission")
	s.Empty(s.mirror.appended)
}

func (s *ServiceSuite) TestMirrorFailureDoesNotFailSubmit() {
	s.mirror.succeed = false

	result, err := s.service.Submit(s.ctx, validInput())
	s.Require().NoError(err)

	s.False(result.SheetsSynced)
	s.Equal(model.SubmissionID(1), result.Submission.ID)
}

func (s *ServiceSuite) TestMirrorUnavailableDoesNotFailSubmit() {
	s.mirror.available = false

	result, err := s.service.Submit(s.ctx, validInput())
	s.Require().NoError(err)

	s.False(result.SheetsSynced)
	s.Empty(s.mirror.appended)
}

func (s *ServiceSuite) TestSubmitMirrorsCompleteRecord() {
	_, err := s.service.Submit(s.ctx, validInput())
	s.Require().NoError(err)

	s.Require().Len(s.mirror.appended, 1)
	mirrored := s.mirror.appended[0]
	s.Equal(model.SubmissionID(1), mirrored.ID)
	s.Equal("2025-06-01 12:00:00", mirrored.Timestamp.Format(model.SheetTimestampLayout))
}

// List tests

func (s *ServiceSuite) TestListEmptyReturnsEmptySlice() {
	subs, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(subs)
}

func (s *ServiceSuite) TestListNewestFirst() {
	for i := 0; i < 3; i++ {
		_, err := s.service.Submit(s.ctx, validInput())
		s.Require().NoError(err)
		s.clock.Advance(time.Minute)
	}

	subs, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(subs, 3)
	s.Equal(model.SubmissionID(3), subs[0].ID)
	s.Equal(model.SubmissionID(2), subs[1].ID)
	s.Equal(model.SubmissionID(1), subs[2].ID)
}

func (s *ServiceSuite) TestListBreaksTimestampTiesByID() {
	// Same clock reading for all three
	for i := 0; i < 3; i++ {
		_, err := s.service.Submit(s.ctx, validInput())
		s.Require().NoError(err)
	}

	subs, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(subs, 3)
	s.Equal(model.SubmissionID(3), subs[0].ID)
	s.Equal(model.SubmissionID(1), subs[2].ID)
}

// GetByID tests

func (s *ServiceSuite) TestGetByIDRoundTrip() {
	severity := model.SeverityCritical
	input := validInput()
	input.Severity = &severity

	result, err := s.service.Submit(s.ctx, input)
	s.Require().NoError(err)

	got, err := s.service.GetByID(s.ctx, result.Submission.ID)
	s.Require().NoError(err)
	s.Equal(result.Submission, got)
}

func (s *ServiceSuite) TestGetByIDNotFound() {
	_, err := s.service.GetByID(s.ctx, 42)
	s.ErrorIs(err, model.ErrSubmissionNotFound)
}
