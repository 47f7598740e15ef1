package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubmitFeedbackRequest is the request body for submitting feedback
type SubmitFeedbackRequest struct {
	TesterName     string  `json:"tester_name"`
	SubmissionType string  `json:"submission_type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Severity       *string `json:"severity,omitempty"`
	Status         string  `json:"status,omitempty"`
}
