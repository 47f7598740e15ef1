package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/betalabs/feedback-intake/internal/model"
	"github.com/betalabs/feedback-intake/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Useful for tests and for deployments without a database file.
type Storage struct {
	mu sync.RWMutex

	submissions map[model.SubmissionID]*model.Submission
	nextID      model.SubmissionID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		submissions: make(map[model.SubmissionID]*model.Submission),
		nextID:      1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) InsertSubmission(ctx context.Context, sub *model.Submission) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *sub
	stored.ID = s.nextID
	s.nextID++

	s.submissions[stored.ID] = &stored
	return &stored, nil
}

func (s *Storage) ListSubmissions(ctx context.Context) ([]*model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		copied := *sub
		result = append(result, &copied)
	}

	// Newest first, ties broken by id descending
	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].ID > result[j].ID
		}
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return result, nil
}

func (s *Storage) GetSubmission(ctx context.Context, id model.SubmissionID) (*model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, model.ErrSubmissionNotFound
	}
	copied := *sub
	return &copied, nil
}
