package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/betalabs/feedback-intake/internal/model"
	"github.com/betalabs/feedback-intake/internal/storage"
)

// Config holds SQLite connection settings
type Config struct {
	// DSN is the database path or DSN, e.g. "feedback.db" or ":memory:"
	DSN string
}

// DefaultConfig returns default SQLite configuration
func DefaultConfig() Config {
	return Config{
		DSN: "feedback.db",
	}
}

// Storage is a SQLite-backed implementation of the storage interface.
// The auto-increment primary key serializes id assignment, so ids are
// collision-free under concurrent inserts without app-level locking.
type Storage struct {
	db *gorm.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New opens the database and migrates the submissions table
func New(cfg Config) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&submissionRecord{}); err != nil {
		return nil, fmt.Errorf("migrating submissions table: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) InsertSubmission(ctx context.Context, sub *model.Submission) (*model.Submission, error) {
	record := recordFromModel(sub)
	record.ID = 0 // let the database assign it

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}

	return record.toModel(), nil
}

func (s *Storage) ListSubmissions(ctx context.Context) ([]*model.Submission, error) {
	var records []submissionRecord
	err := s.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	result := make([]*model.Submission, len(records))
	for i := range records {
		result[i] = records[i].toModel()
	}
	return result, nil
}

func (s *Storage) GetSubmission(ctx context.Context, id model.SubmissionID) (*model.Submission, error) {
	var record submissionRecord
	err := s.db.WithContext(ctx).First(&record, int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("fetching submission %d: %w", id, err)
	}
	return record.toModel(), nil
}
