package handler

import (
	"net/http"

	"github.com/nexthire/api/internal/middleware"
	"github.com/nexthire/api/internal/model"
)

// AuthService interface for the handler
type AuthService interface {
	IssueToken(payload map[string]interface{}) (string, error)
}

// AuthHandler handles token issuance and logout
type AuthHandler struct {
	authService   AuthService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler. secureCookies should be true
// in production so the auth cookie only travels over HTTPS.
func NewAuthHandler(authService AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// Issue handles POST /jwt - sign a token from the request body claims and
// set it as the auth cookie
func (h *AuthHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := DecodeJSON(r, &payload); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	token, err := h.authService.IssueToken(payload)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	// No Max-Age: the 7-day expiry lives in the signed token itself, and
	// the cookie rides along as a session cookie.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout handles POST /logout - clear the auth cookie. The token itself is
// not revoked server-side; it simply stops being sent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
