package middleware

import (
	"net/http"

	"health-assessment-service/pkg/response"
)

// RequireSignedIn rejects requests whose session has no signed-in user.
// Must run after Authenticate.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSessionFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Session information not found")
			return
		}

		if !sess.Store.Snapshot().IsAuthenticated {
			response.Unauthorized(w, "Please sign in first")
			return
		}

		next.ServeHTTP(w, r)
	})
}
