// Package httpapi assembles the HTTP boundary: router, middlewares and
// metrics. The core semantics live in the repositories; this layer only maps
// wire requests onto them and their typed failures back onto the wire.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/userhabitat/internal/apierr"
	"github.com/dropDatabas3/userhabitat/internal/httpapi/handlers"
	mw "github.com/dropDatabas3/userhabitat/internal/httpapi/middlewares"
	"github.com/dropDatabas3/userhabitat/internal/httpapi/respond"
	"github.com/dropDatabas3/userhabitat/internal/repository"
)

// Deps carries everything the router needs.
type Deps struct {
	Users  *repository.Users
	Houses *repository.Houses

	// AuthToken is the static bearer secret every API route requires.
	AuthToken string

	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// NewRouter builds the service handler. Health and metrics are mounted
// outside the auth group; everything else requires the bearer token.
func NewRouter(deps Deps) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithLogging(),
	)
	if len(deps.CORSAllowedOrigins) > 0 {
		r.Use(mw.WithCORS(deps.CORSAllowedOrigins))
	}

	// chi wants every middleware mounted before the first route
	var metricsHandler http.Handler
	if deps.MetricsEnabled {
		h, err := RegisterMetrics(nil)
		if err != nil {
			return nil, err
		}
		metricsHandler = h
		r.Use(WithMetrics)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, apierr.NotFoundf("Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, apierr.New(http.StatusMethodNotAllowed, "Method not allowed"))
	})

	r.Get("/healthz", handlers.Healthz)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	usersHandler := handlers.NewUsersHandler(deps.Users)
	housesHandler := handlers.NewHousesHandler(deps.Houses)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireToken(deps.AuthToken))

		r.Get("/", handlers.Root)
		usersHandler.Register(r)
		housesHandler.Register(r)
	})

	return r, nil
}
