package repository

import (
	"context"
	"encoding/json"

	"github.com/nexthire/api/internal/database"
	"github.com/nexthire/api/internal/model"
)

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// List retrieves job postings, filtered to one owner when hrEmail is
// non-empty, or the full collection otherwise.
func (r *JobRepository) List(ctx context.Context, hrEmail string) ([]*model.Job, error) {
	query := `SELECT * FROM job`
	vars := map[string]interface{}{}
	if hrEmail != "" {
		query += ` WHERE hr_email = $hr_email`
		vars["hr_email"] = hrEmail
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	jobs := make([]*model.Job, 0)
	for _, row := range extractQueryResults(results) {
		job, err := parseJobRow(row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// GetByID retrieves a single job by its canonical record id.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, database.ErrNotFound
	}

	return parseJobRow(result)
}

// Create stores a job posting document as supplied and returns the new
// record id. No field validation is performed.
func (r *JobRepository) Create(ctx context.Context, doc map[string]interface{}) (string, error) {
	query := `CREATE job CONTENT $data`
	vars := map[string]interface{}{"data": doc}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return "", err
	}

	return extractCreatedID(results)
}

// parseJobRow converts a raw result row into a Job, normalizing the
// record id to its string form.
func parseJobRow(row interface{}) (*model.Job, error) {
	data, ok := row.(map[string]interface{})
	if !ok {
		return nil, errUnexpectedResult
	}

	if id, ok := data["id"]; ok {
		data["id"] = convertRecordID(id)
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var job model.Job
	if err := json.Unmarshal(jsonBytes, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
