package storage

import (
	"context"

	"github.com/betalabs/feedback-intake/internal/model"
)

// Storage defines the interface for submission persistence.
//
// InsertSubmission assigns the id; implementations must make id assignment
// collision-free under concurrent inserts and store the record atomically.
type Storage interface {
	// InsertSubmission stores a new submission, assigns its id and returns
	// the stored form
	InsertSubmission(ctx context.Context, sub *model.Submission) (*model.Submission, error)

	// ListSubmissions returns all submissions ordered by timestamp
	// descending, ties broken by id descending
	ListSubmissions(ctx context.Context) ([]*model.Submission, error)

	// GetSubmission returns the submission with the given id, or
	// model.ErrSubmissionNotFound
	GetSubmission(ctx context.Context, id model.SubmissionID) (*model.Submission, error)
}
