package service

import (
	"errors"
	"testing"

	"github.com/nexthire/api/pkg/jwt"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	jwtService, err := jwt.NewService(jwt.Config{Secret: "test-secret", Issuer: "test"})
	if err != nil {
		t.Fatalf("failed to create jwt service: %v", err)
	}
	return NewAuthService(AuthServiceConfig{JWTService: jwtService})
}

func TestIssueToken_RequiresEmail(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t)

	cases := []map[string]interface{}{
		{},
		{"name": "no email"},
		{"email": 42},
		{"email": ""},
	}
	for _, payload := range cases {
		if _, err := svc.IssueToken(payload); !errors.Is(err, ErrEmailRequired) {
			t.Errorf("payload %v: expected ErrEmailRequired, got %v", payload, err)
		}
	}
}

func TestIssueToken_PassesExtensionClaimsThrough(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t)

	token, err := svc.IssueToken(map[string]interface{}{
		"email": "a@x.com",
		"name":  "A Person",
		"role":  "hr",
	})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got %q", claims.Email)
	}
	if claims.Extra["name"] != "A Person" || claims.Extra["role"] != "hr" {
		t.Errorf("expected extension claims preserved, got %v", claims.Extra)
	}
}

func TestValidateAccessToken_RejectsForeignToken(t *testing.T) {
	t.Parallel()

	other, err := jwt.NewService(jwt.Config{Secret: "other-secret"})
	if err != nil {
		t.Fatalf("failed to create jwt service: %v", err)
	}
	foreign, err := other.Sign(jwt.Claims{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	svc := newTestAuthService(t)
	if _, err := svc.ValidateAccessToken(foreign); !errors.Is(err, jwt.ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}
