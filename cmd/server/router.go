package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ledgerly/ledger-api/internal/api"
	apiMiddleware "github.com/ledgerly/ledger-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	userHandler := api.NewUserHandler(app.userService, app.jwtService, app.logger)
	entryHandler := api.NewEntryHandler(app.entryService, app.userService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// User endpoints (public)
		r.Post("/users", userHandler.Register)
		r.Post("/users/autenticar", userHandler.Authenticate)

		// Entry endpoints require a bearer token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/entries", entryHandler.Search)
			r.Post("/entries", entryHandler.Create)
			r.Get("/entries/{id}", entryHandler.Get)
			r.Put("/entries/{id}", entryHandler.Update)
			r.Put("/entries/{id}/status", entryHandler.UpdateStatus)
			r.Delete("/entries/{id}", entryHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
