package service

import (
	"github.com/nexthire/api/pkg/jwt"
)

// AuthService mints and verifies the identity tokens carried in the auth
// cookie. There is no account store behind it: tokens are issued from
// caller-supplied claims, and logout is purely a client-side cookie
// removal.
type AuthService struct {
	jwtService *jwt.Service
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	JWTService *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{jwtService: cfg.JWTService}
}

// IssueToken signs a token from an open claims payload. The payload must
// contain a string "email"; every other field passes through opaquely as
// an extension claim.
func (s *AuthService) IssueToken(payload map[string]interface{}) (string, error) {
	email, _ := payload["email"].(string)
	if email == "" {
		return "", ErrEmailRequired
	}

	extra := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		if k == "email" {
			continue
		}
		extra[k] = v
	}

	return s.jwtService.Sign(jwt.Claims{
		Email: email,
		Extra: extra,
	})
}

// ValidateAccessToken verifies a token and returns its claims.
func (s *AuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}
