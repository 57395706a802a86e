package middlewares

import (
	"net/http"

	"github.com/dropDatabas3/userhabitat/internal/apierr"
	"github.com/dropDatabas3/userhabitat/internal/httpapi/respond"
	"github.com/dropDatabas3/userhabitat/internal/observability/logger"
)

// WithRecover turns a handler panic into a 500 response instead of letting
// it tear down the connection.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("panic recovered",
						logger.Any("panic", rec),
						logger.Path(r.URL.Path),
					)
					respond.Error(w, apierr.New(http.StatusInternalServerError, "Unexpected error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
