package model

import "time"

// SubmissionID identifies a persisted submission
type SubmissionID int64

// Submission types
const (
	TypeBug      = "Bug"
	TypeFeedback = "Feedback"
	TypeProgress = "Progress"
)

// Severity levels
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Submission statuses
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// DefaultStatus is assigned when a submission carries no status
const DefaultStatus = StatusNew

// MaxTitleLength is the upper bound on submission titles
const MaxTitleLength = 200

// Submission is one tester-authored bug report, feedback item or progress note.
// Once persisted it is immutable: no update or delete operations exist.
type Submission struct {
	ID             SubmissionID
	TesterName     string
	SubmissionType string
	Title          string
	Description    string
	Severity       *string
	Status         string
	Timestamp      time.Time
}

// SheetTimestampLayout is the timestamp format used for spreadsheet rows
const SheetTimestampLayout = "2006-01-02 15:04:05"

// SheetRow renders the submission as a spreadsheet row:
// [timestamp, tester_name, submission_type, title, description, severity, status]
func (s *Submission) SheetRow() []string {
	severity := ""
	if s.Severity != nil {
		severity = *s.Severity
	}
	return []string{
		s.Timestamp.Format(SheetTimestampLayout),
		s.TesterName,
		s.SubmissionType,
		s.Title,
		s.Description,
		severity,
		s.Status,
	}
}
