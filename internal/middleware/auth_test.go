package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexthire/api/pkg/jwt"
)

// ============================================================================
// Mock AuthService
// ============================================================================

type mockAuthService struct {
	validateFunc func(token string) (*jwt.Claims, error)
}

func (m *mockAuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return m.validateFunc(token)
}

// successAuthService returns valid claims for any token
func successAuthService(email string) *mockAuthService {
	return &mockAuthService{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return &jwt.Claims{Email: email}, nil
		},
	}
}

// errorAuthService returns the specified error
func errorAuthService(err error) *mockAuthService {
	return &mockAuthService{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return nil, err
		},
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func assertGenericUnauthorized(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Unauthorized access" {
		t.Errorf("expected generic message 'Unauthorized access', got %q", body["message"])
	}
}

// ============================================================================
// Auth() Middleware Tests
// ============================================================================

func TestAuth_MissingCookie_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	authSvc := successAuthService("test@example.com")
	middleware := Auth(authSvc)
	handler := &captureHandler{}

	req := newTestRequest("") // No cookie
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	assertGenericUnauthorized(t, rr)
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_EmptyCookieValue_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	authSvc := successAuthService("test@example.com")
	middleware := Auth(authSvc)
	handler := &captureHandler{}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: ""})
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	assertGenericUnauthorized(t, rr)
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_ValidToken_SetsContext_CallsNext(t *testing.T) {
	t.Parallel()
	authSvc := successAuthService("test@example.com")
	middleware := Auth(authSvc)
	handler := &captureHandler{}

	req := newTestRequest("valid-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Error("handler should have been called")
	}

	// Check context values
	if GetUserEmail(handler.ctx) != "test@example.com" {
		t.Errorf("expected email 'test@example.com', got %q", GetUserEmail(handler.ctx))
	}
	claims := GetClaims(handler.ctx)
	if claims == nil || claims.Email != "test@example.com" {
		t.Errorf("expected claims in context, got %+v", claims)
	}
}

func TestAuth_ExpiredToken_ReturnsGenericUnauthorized(t *testing.T) {
	t.Parallel()
	authSvc := errorAuthService(jwt.ErrTokenExpired)
	middleware := Auth(authSvc)
	handler := &captureHandler{}

	req := newTestRequest("expired-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	// Expired and invalid tokens must be indistinguishable to the caller
	assertGenericUnauthorized(t, rr)
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidSignature_ReturnsGenericUnauthorized(t *testing.T) {
	t.Parallel()
	authSvc := errorAuthService(jwt.ErrInvalidSignature)
	middleware := Auth(authSvc)
	handler := &captureHandler{}

	req := newTestRequest("forged-token")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	assertGenericUnauthorized(t, rr)
	if handler.called {
		t.Error("handler should not have been called")
	}
}
