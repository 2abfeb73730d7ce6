package handler

import (
	"context"
	"net/http"

	"github.com/nexthire/api/internal/model"
)

// ApplicationService interface for the handler
type ApplicationService interface {
	ListByApplicant(ctx context.Context, email string) ([]*model.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*model.Application, error)
	CreateApplication(ctx context.Context, doc map[string]interface{}) (string, error)
}

// ApplicationHandler handles application HTTP requests
type ApplicationHandler struct {
	applicationService ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ListByApplicant handles GET /applications - list the caller's own
// applications, enriched with the referenced job's metadata. The ownership
// middleware has already required the email parameter to match the caller.
func (h *ApplicationHandler) ListByApplicant(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	applications, err := h.applicationService.ListByApplicant(r.Context(), email)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if applications == nil {
		applications = []*model.Application{}
	}
	WriteJSON(w, http.StatusOK, applications)
}

// ListByJob handles GET /applications/job/{job_id} - list applications for
// a job. Any authenticated caller may read these, not just the job's owner.
func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")

	applications, err := h.applicationService.ListByJob(r.Context(), jobID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if applications == nil {
		applications = []*model.Application{}
	}
	WriteJSON(w, http.StatusOK, applications)
}

// Create handles POST /applications - store an application. This endpoint
// is deliberately unauthenticated: the applicant field is caller-supplied
// and not verified against any identity.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc map[string]interface{}
	if err := DecodeJSON(r, &doc); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	id, err := h.applicationService.CreateApplication(r.Context(), doc)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, InsertResult{InsertedID: id, Acknowledged: true})
}
