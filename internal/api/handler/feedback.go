package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/betalabs/feedback-intake/internal/api/apierr"
	"github.com/betalabs/feedback-intake/internal/api/request"
	"github.com/betalabs/feedback-intake/internal/api/response"
	"github.com/betalabs/feedback-intake/internal/model"
	"github.com/betalabs/feedback-intake/internal/services/submission"
)

// FeedbackHandler handles submission endpoints
type FeedbackHandler struct {
	submissionService *submission.Service
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(submissionService *submission.Service) *FeedbackHandler {
	return &FeedbackHandler{
		submissionService: submissionService,
	}
}

// Submit handles POST /feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.submissionService.Submit(r.Context(), submission.Input{
		TesterName:     req.TesterName,
		SubmissionType: req.SubmissionType,
		Title:          req.Title,
		Description:    req.Description,
		Severity:       req.Severity,
		Status:         req.Status,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmitResponseFromResult(result))
}

// List handles GET /feedback
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissionService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmissionsFromModel(subs))
}

// Get handles GET /feedback/{id}
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid submission id"))
		return
	}

	sub, err := h.submissionService.GetByID(r.Context(), model.SubmissionID(id))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmissionFromModel(sub))
}
