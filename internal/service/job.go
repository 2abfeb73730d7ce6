package service

import (
	"context"
	"errors"

	"github.com/nexthire/api/internal/database"
	"github.com/nexthire/api/internal/model"
)

// JobRepository defines the job data access the service needs
type JobRepository interface {
	List(ctx context.Context, hrEmail string) ([]*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	Create(ctx context.Context, doc map[string]interface{}) (string, error)
}

// ApplicationCounter counts applications referencing a job
type ApplicationCounter interface {
	CountByJobID(ctx context.Context, jobID string) (int, error)
}

// JobService handles job posting operations
type JobService struct {
	jobRepo JobRepository
	counter ApplicationCounter
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo JobRepository
	Counter ApplicationCounter
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	return &JobService{
		jobRepo: cfg.JobRepo,
		counter: cfg.Counter,
	}
}

// ListJobs returns job postings, filtered to one owner when hrEmail is
// non-empty. Every returned job carries a freshly computed
// applicationCount; the counts are issued as one query per job, never
// cached or stored.
func (s *JobService) ListJobs(ctx context.Context, hrEmail string) ([]*model.Job, error) {
	jobs, err := s.jobRepo.List(ctx, hrEmail)
	if err != nil {
		return nil, err
	}

	for _, job := range jobs {
		count, err := s.counter.CountByJobID(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		c := count
		job.ApplicationCount = &c
	}

	return jobs, nil
}

// GetJob returns a single job by its identifier. Malformed identifiers
// fail with ErrInvalidJobID before reaching the store. The single-job
// fetch carries no applicationCount.
func (s *JobService) GetJob(ctx context.Context, rawID string) (*model.Job, error) {
	id, ok := model.CanonicalJobID(rawID)
	if !ok {
		return nil, ErrInvalidJobID
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// CreateJob stores a job posting document as supplied and returns the new
// record id.
func (s *JobService) CreateJob(ctx context.Context, doc map[string]interface{}) (string, error) {
	return s.jobRepo.Create(ctx, doc)
}
