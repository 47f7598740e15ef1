package sqlite

import (
	"time"

	"github.com/betalabs/feedback-intake/internal/model"
)

// submissionRecord is the database representation of a submission
type submissionRecord struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	TesterName     string    `gorm:"size:100;not null"`
	SubmissionType string    `gorm:"size:50;not null"`
	Title          string    `gorm:"size:200;not null"`
	Description    string    `gorm:"type:text;not null"`
	Severity       *string   `gorm:"size:20"`
	Status         string    `gorm:"size:20;not null;default:New"`
	Timestamp      time.Time `gorm:"index;not null"`
}

// TableName sets the table name for gorm
func (submissionRecord) TableName() string {
	return "submissions"
}

func recordFromModel(sub *model.Submission) *submissionRecord {
	return &submissionRecord{
		ID:             int64(sub.ID),
		TesterName:     sub.TesterName,
		SubmissionType: sub.SubmissionType,
		Title:          sub.Title,
		Description:    sub.Description,
		Severity:       sub.Severity,
		Status:         sub.Status,
		Timestamp:      sub.Timestamp,
	}
}

func (r *submissionRecord) toModel() *model.Submission {
	return &model.Submission{
		ID:             model.SubmissionID(r.ID),
		TesterName:     r.TesterName,
		SubmissionType: r.SubmissionType,
		Title:          r.Title,
		Description:    r.Description,
		Severity:       r.Severity,
		Status:         r.Status,
		Timestamp:      r.Timestamp,
	}
}
