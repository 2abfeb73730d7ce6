package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nexthire/api/internal/database"
	"github.com/nexthire/api/internal/model"
)

// ApplicationRepository handles job application data access
type ApplicationRepository struct {
	db database.Database
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db database.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// ListByApplicant retrieves all applications submitted by one identity.
func (r *ApplicationRepository) ListByApplicant(ctx context.Context, email string) ([]*model.Application, error) {
	query := `SELECT * FROM application WHERE applicant = $applicant`
	vars := map[string]interface{}{"applicant": email}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseApplicationRows(results)
}

// ListByJobID retrieves all applications whose jobId matches the given
// value. The comparison is on the raw stored string; no attempt is made to
// resolve or validate the reference.
func (r *ApplicationRepository) ListByJobID(ctx context.Context, jobID string) ([]*model.Application, error) {
	query := `SELECT * FROM application WHERE jobId = $job_id`
	vars := map[string]interface{}{"job_id": jobID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseApplicationRows(results)
}

// CountByJobID counts applications referencing the given job record id.
func (r *ApplicationRepository) CountByJobID(ctx context.Context, jobID string) (int, error) {
	query := `SELECT count() AS count FROM application WHERE jobId = $job_id GROUP ALL`
	vars := map[string]interface{}{"job_id": jobID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// Create stores an application document as supplied and returns the new
// record id. No field validation is performed; the applicant field is
// caller-controlled.
func (r *ApplicationRepository) Create(ctx context.Context, doc map[string]interface{}) (string, error) {
	query := `CREATE application CONTENT $data`
	vars := map[string]interface{}{"data": doc}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return "", err
	}

	return extractCreatedID(results)
}

// parseApplicationRows converts raw query results into Applications.
func parseApplicationRows(results []interface{}) ([]*model.Application, error) {
	apps := make([]*model.Application, 0)
	for _, row := range extractQueryResults(results) {
		app, err := parseApplicationRow(row)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func parseApplicationRow(row interface{}) (*model.Application, error) {
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

	var app model.Application
	if err := json.Unmarshal(jsonBytes, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
