package service

import (
	"context"
	"errors"

	"github.com/nexthire/api/internal/database"
	"github.com/nexthire/api/internal/model"
)

// ApplicationRepository defines the application data access the service needs
type ApplicationRepository interface {
	ListByApplicant(ctx context.Context, email string) ([]*model.Application, error)
	ListByJobID(ctx context.Context, jobID string) ([]*model.Application, error)
	Create(ctx context.Context, doc map[string]interface{}) (string, error)
}

// JobGetter looks up a job by canonical record id for enrichment
type JobGetter interface {
	GetByID(ctx context.Context, id string) (*model.Job, error)
}

// ApplicationService handles job application operations
type ApplicationService struct {
	appRepo ApplicationRepository
	jobs    JobGetter
}

// ApplicationServiceConfig holds configuration for the application service
type ApplicationServiceConfig struct {
	AppRepo ApplicationRepository
	Jobs    JobGetter
}

// NewApplicationService creates a new application service
func NewApplicationService(cfg ApplicationServiceConfig) *ApplicationService {
	return &ApplicationService{
		appRepo: cfg.AppRepo,
		jobs:    cfg.Jobs,
	}
}

// ListByApplicant returns one identity's applications, each enriched with
// its referenced job's company, title, and logo. Enrichment is
// best-effort: a malformed jobId or a missing job leaves the application
// unenriched rather than failing the request, and each lookup is one
// sequential query.
func (s *ApplicationService) ListByApplicant(ctx context.Context, email string) ([]*model.Application, error) {
	apps, err := s.appRepo.ListByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		id, ok := model.CanonicalJobID(app.JobID)
		if !ok {
			continue
		}

		job, err := s.jobs.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				continue
			}
			return nil, err
		}
		app.EnrichFromJob(job)
	}

	return apps, nil
}

// ListByJob returns all applications whose jobId matches the given raw
// value. Any authenticated identity may call this for any job id; the
// job's owner is deliberately not consulted.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]*model.Application, error) {
	return s.appRepo.ListByJobID(ctx, jobID)
}

// CreateApplication stores an application document as supplied and returns
// the new record id.
func (s *ApplicationService) CreateApplication(ctx context.Context, doc map[string]interface{}) (string, error) {
	return s.appRepo.Create(ctx, doc)
}
