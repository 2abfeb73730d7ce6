package middleware

import (
	"net/http"

	"github.com/nexthire/api/internal/model"
)

// OwnershipGuard returns a middleware that compares the "email" query
// parameter against the authenticated identity. It must run after Auth.
//
// When required is false and the parameter is absent, the check is skipped
// and the unrestricted listing proceeds; this is the deliberate asymmetry
// between the public job listing and owner-scoped listings. Any present
// parameter, and an absent one on required routes, must match the
// authenticated email exactly or the request is rejected with 403.
func OwnershipGuard(required bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			target := r.URL.Query().Get("email")

			if target == "" && !required {
				next.ServeHTTP(w, r)
				return
			}

			if target != GetUserEmail(r.Context()) {
				model.NewForbiddenError().WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
