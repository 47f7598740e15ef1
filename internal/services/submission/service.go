package submission

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/betalabs/feedback-intake/internal/dependencies/clock"
	"github.com/betalabs/feedback-intake/internal/mirror"
	"github.com/betalabs/feedback-intake/internal/model"
	"github.com/betalabs/feedback-intake/internal/storage"
)

// Service orchestrates submission intake: validation, persistence, and
// best-effort mirroring
type Service struct {
	storage storage.Storage
	mirror  mirror.Mirror
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new submission Service
func New(store storage.Storage, m mirror.Mirror, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		mirror:  m,
		clock:   clk,
		logger:  logger,
	}
}

// Input carries the client-supplied fields of a new submission
type Input struct {
	TesterName     string
	SubmissionType string
	Title          string
	Description    string
	Severity       *string
	Status         string
}

// Result is a persisted submission plus the mirror outcome
type Result struct {
	Submission   *model.Submission
	SheetsSynced bool
}

// Submit validates the input, persists the submission, then attempts to
// mirror it. Persistence failure aborts the whole operation; mirror failure
// only clears the SheetsSynced flag.
func (s *Service) Submit(ctx context.Context, input Input) (*Result, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.DefaultStatus
	}

	sub := &model.Submission{
		TesterName:     input.TesterName,
		SubmissionType: input.SubmissionType,
		Title:          input.Title,
		Description:    input.Description,
		Severity:       input.Severity,
		Status:         status,
		Timestamp:      s.clock.Now().UTC(),
	}

	stored, err := s.storage.InsertSubmission(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("persisting submission: %w", err)
	}

	synced := s.mirror.Append(ctx, stored)
	if !synced && s.mirror.Available() {
		s.logger.Warn("submission not mirrored",
			slog.Int64("submission_id", int64(stored.ID)))
	}

	s.logger.Info("submission stored",
		slog.Int64("submission_id", int64(stored.ID)),
		slog.String("type", stored.SubmissionType),
		slog.Bool("sheets_synced", synced))

	return &Result{Submission: stored, SheetsSynced: synced}, nil
}

// List returns all submissions, newest first
func (s *Service) List(ctx context.Context) ([]*model.Submission, error) {
	return s.storage.ListSubmissions(ctx)
}

// GetByID returns one submission or model.ErrSubmissionNotFound
func (s *Service) GetByID(ctx context.Context, id model.SubmissionID) (*model.Submission, error) {
	return s.storage.GetSubmission(ctx, id)
}

// validate checks required fields in order and stops at the first offender
func validate(input Input) error {
	if input.TesterName == "" {
		return model.NewMissingFieldError("tester_name")
	}
	if input.SubmissionType == "" {
		return model.NewMissingFieldError("submission_type")
	}
	if input.Title == "" {
		return model.NewMissingFieldError("title")
	}
	if utf8.RuneCountInString(input.Title) > model.MaxTitleLength {
		return model.NewInvalidFieldError("title", "must be at most 200 characters")
	}
	if input.Description == "" {
		return model.NewMissingFieldError("description")
	}
	return nil
}
