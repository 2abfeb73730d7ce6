package middleware

import (
	"context"
	"net/http"

	"github.com/nexthire/api/internal/model"
	"github.com/nexthire/api/pkg/jwt"
)

// TokenCookieName is the cookie the auth token travels in.
const TokenCookieName = "token"

// AuthService defines the interface for token validation
type AuthService interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// ClaimsKey is the context key for the decoded token claims
const ClaimsKey contextKey = "claims"

// UserEmailKey is the context key for the authenticated email
const UserEmailKey contextKey = "userEmail"

// Auth returns a middleware that authenticates requests from the token
// cookie. Missing and invalid tokens both short-circuit with the same
// generic 401 body, so callers cannot distinguish a bad signature from an
// expired token.
func Auth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				model.NewUnauthorizedError().WriteJSON(w)
				return
			}

			claims, err := authService.ValidateAccessToken(cookie.Value)
			if err != nil {
				model.NewUnauthorizedError().WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserEmail extracts the authenticated email from context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetClaims extracts the decoded token claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}

// WithUserEmail returns a context carrying an authenticated email.
// Intended for tests that exercise handlers behind the auth middleware.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, email)
}
