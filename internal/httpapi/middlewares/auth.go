package middlewares

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dropDatabas3/userhabitat/internal/apierr"
	"github.com/dropDatabas3/userhabitat/internal/httpapi/respond"
)

// RequireToken checks "Authorization: Bearer <token>" against the configured
// shared secret. Any missing or mismatching header gets a 401 with the API's
// uniform error body.
func RequireToken(token string) Middleware {
	want := []byte("Bearer " + token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimSpace(r.Header.Get("Authorization"))
			if got == "" || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				respond.Error(w, apierr.Unauthorized())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
