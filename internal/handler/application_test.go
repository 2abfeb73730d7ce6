package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nexthire/api/internal/model"
)

// ============================================================================
// Mock ApplicationService
// ============================================================================

type mockApplicationService struct {
	listByApplicantFunc   func(ctx context.Context, email string) ([]*model.Application, error)
	listByJobFunc         func(ctx context.Context, jobID string) ([]*model.Application, error)
	createApplicationFunc func(ctx context.Context, doc map[string]interface{}) (string, error)
}

func (m *mockApplicationService) ListByApplicant(ctx context.Context, email string) ([]*model.Application, error) {
	if m.listByApplicantFunc != nil {
		return m.listByApplicantFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockApplicationService) ListByJob(ctx context.Context, jobID string) ([]*model.Application, error) {
	if m.listByJobFunc != nil {
		return m.listByJobFunc(ctx, jobID)
	}
	return nil, nil
}

func (m *mockApplicationService) CreateApplication(ctx context.Context, doc map[string]interface{}) (string, error) {
	if m.createApplicationFunc != nil {
		return m.createApplicationFunc(ctx, doc)
	}
	return "", nil
}

// ============================================================================
// ListByApplicant Tests
// ============================================================================

func TestApplicationHandler_ListByApplicant_ReturnsEnrichedDocuments(t *testing.T) {
	t.Parallel()
	appSvc := &mockApplicationService{
		listByApplicantFunc: func(ctx context.Context, email string) ([]*model.Application, error) {
			if email != "c@x.com" {
				t.Errorf("expected email 'c@x.com', got %q", email)
			}
			return []*model.Application{
				{
					ID:          "application:1",
					Applicant:   "c@x.com",
					JobID:       "abc123",
					Company:     "Acme",
					Title:       "Engineer",
					CompanyLogo: "https://acme.example/logo.png",
				},
			}, nil
		},
	}
	h := NewApplicationHandler(appSvc)

	req := httptest.NewRequest(http.MethodGet, "/applications?email=c@x.com", nil)
	rr := httptest.NewRecorder()

	h.ListByApplicant(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var apps []map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &apps); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
	if apps[0]["company"] != "Acme" || apps[0]["company_logo"] != "https://acme.example/logo.png" {
		t.Errorf("expected job metadata on application, got %v", apps[0])
	}
}

func TestApplicationHandler_ListByApplicant_EmptyResult_ReturnsEmptyArray(t *testing.T) {
	t.Parallel()
	h := NewApplicationHandler(&mockApplicationService{})

	req := httptest.NewRequest(http.MethodGet, "/applications?email=c@x.com", nil)
	rr := httptest.NewRecorder()

	h.ListByApplicant(rr, req)

	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %q", rr.Body.String())
	}
}

func TestApplicationHandler_ListByApplicant_ServiceError_Returns500(t *testing.T) {
	t.Parallel()
	appSvc := &mockApplicationService{
		listByApplicantFunc: func(ctx context.Context, email string) ([]*model.Application, error) {
			return nil, errors.New("query failed")
		},
	}
	h := NewApplicationHandler(appSvc)

	req := httptest.NewRequest(http.MethodGet, "/applications?email=c@x.com", nil)
	rr := httptest.NewRecorder()

	h.ListByApplicant(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
}

// ============================================================================
// ListByJob Tests
// ============================================================================

func TestApplicationHandler_ListByJob_PassesPathID(t *testing.T) {
	t.Parallel()
	appSvc := &mockApplicationService{
		listByJobFunc: func(ctx context.Context, jobID string) ([]*model.Application, error) {
			if jobID != "abc123" {
				t.Errorf("expected jobID 'abc123', got %q", jobID)
			}
			return []*model.Application{
				{ID: "application:1", Applicant: "c@x.com", JobID: "abc123"},
				{ID: "application:2", Applicant: "d@x.com", JobID: "abc123"},
			}, nil
		},
	}
	h := NewApplicationHandler(appSvc)

	req := httptest.NewRequest(http.MethodGet, "/applications/job/abc123", nil)
	req.SetPathValue("job_id", "abc123")
	rr := httptest.NewRecorder()

	h.ListByJob(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var apps []map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &apps); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(apps) != 2 {
		t.Errorf("expected 2 applications, got %d", len(apps))
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestApplicationHandler_Create_StoresOpenDocument(t *testing.T) {
	t.Parallel()
	appSvc := &mockApplicationService{
		createApplicationFunc: func(ctx context.Context, doc map[string]interface{}) (string, error) {
			if doc["applicant"] != "c@x.com" || doc["jobId"] != "abc123" {
				t.Errorf("expected document passed through, got %v", doc)
			}
			return "application:new1", nil
		},
	}
	h := NewApplicationHandler(appSvc)

	req := makeJSONRequest(http.MethodPost, "/applications", map[string]interface{}{
		"applicant": "c@x.com",
		"jobId":     "abc123",
		"resume":    "https://example.com/cv.pdf",
	})
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var result InsertResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if result.InsertedID != "application:new1" {
		t.Errorf("expected insertedId 'application:new1', got %q", result.InsertedID)
	}
	if !result.Acknowledged {
		t.Error("expected acknowledged true")
	}
}

func TestApplicationHandler_Create_InvalidBody_Returns400(t *testing.T) {
	t.Parallel()
	h := NewApplicationHandler(&mockApplicationService{})

	req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
