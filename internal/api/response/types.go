package response

import (
	"time"

	"github.com/betalabs/feedback-intake/internal/model"
	"github.com/betalabs/feedback-intake/internal/services/submission"
)

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Message   string `json:"message"`
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
}

// LogoutResponse is the response for a logout
type LogoutResponse struct {
	Message string `json:"message"`
}

// StatusResponse reports the caller's authentication state
type StatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// Submission represents a submission in API responses
type Submission struct {
	ID             int64     `json:"id"`
	TesterName     string    `json:"tester_name"`
	SubmissionType string    `json:"submission_type"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Severity       *string   `json:"severity"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

// SubmissionFromModel converts a model.Submission to a response Submission
func SubmissionFromModel(s *model.Submission) Submission {
	return Submission{
		ID:             int64(s.ID),
		TesterName:     s.TesterName,
		SubmissionType: s.SubmissionType,
		Title:          s.Title,
		Description:    s.Description,
		Severity:       s.Severity,
		Status:         s.Status,
		Timestamp:      s.Timestamp,
	}
}

// SubmissionsFromModel converts a slice of submissions
func SubmissionsFromModel(subs []*model.Submission) []Submission {
	result := make([]Submission, len(subs))
	for i, s := range subs {
		result[i] = SubmissionFromModel(s)
	}
	return result
}

// SubmitResponse is the full record plus the mirror outcome
type SubmitResponse struct {
	Submission
	SheetsSynced bool `json:"sheets_synced"`
}

// SubmitResponseFromResult creates a SubmitResponse from a service result
func SubmitResponseFromResult(r *submission.Result) SubmitResponse {
	return SubmitResponse{
		Submission:   SubmissionFromModel(r.Submission),
		SheetsSynced: r.SheetsSynced,
	}
}
