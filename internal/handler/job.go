package handler

import (
	"context"
	"net/http"

	"github.com/nexthire/api/internal/model"
)

// JobService interface for the handler
type JobService interface {
	ListJobs(ctx context.Context, hrEmail string) ([]*model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	CreateJob(ctx context.Context, doc map[string]interface{}) (string, error)
}

// JobHandler handles job HTTP requests
type JobHandler struct {
	jobService JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List handles GET /jobs - list jobs, optionally filtered by owner email.
// The ownership middleware has already vetted the email parameter, so any
// value reaching this point is either empty or the caller's own.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	hrEmail := r.URL.Query().Get("email")

	jobs, err := h.jobService.ListJobs(r.Context(), hrEmail)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if jobs == nil {
		jobs = []*model.Job{}
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// Get handles GET /jobs/{id} - single job by identifier
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := h.jobService.GetJob(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, job)
}

// Create handles POST /jobs - store a job posting
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc map[string]interface{}
	if err := DecodeJSON(r, &doc); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	id, err := h.jobService.CreateJob(r.Context(), doc)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, InsertResult{InsertedID: id, Acknowledged: true})
}
