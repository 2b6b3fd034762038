package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/schemesvc/fas-api/internal/api"
	apiMiddleware "github.com/schemesvc/fas-api/internal/api/middleware"
	"github.com/schemesvc/fas-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Everything under /api except the auth endpoints requires
// an authenticated administrator.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.adminStore,
		app.jwtService,
		app.passwordVerifier,
		app.config.Auth,
	)
	adminHandler := api.NewAdminHandler(app.adminStore)
	applicantHandler := api.NewApplicantHandler(app.applicantService)
	schemeHandler := api.NewSchemeHandler(app.schemeService, app.eligibilityService)
	applicationHandler := api.NewApplicationHandler(app.applicationService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireRole(domain.RoleAdmin))

			// Administrator management
			r.Get("/administrators", adminHandler.List)
			r.Delete("/administrators/{id}", adminHandler.Delete)

			// Applicant registry
			r.Get("/applicants", applicantHandler.List)
			r.Post("/applicants", applicantHandler.Create)

			// Scheme catalog and eligibility query
			r.Get("/schemes", schemeHandler.List)
			r.Post("/schemes", schemeHandler.Create)
			r.Get("/schemes/eligible", schemeHandler.Eligible)
			r.Get("/schemes/criteria", schemeHandler.ListCriteria)
			r.Get("/schemes/benefits", schemeHandler.ListBenefits)
			r.Delete("/schemes/{id}", schemeHandler.Delete)

			// Applications
			r.Get("/applications", applicationHandler.List)
			r.Post("/applications", applicationHandler.Submit)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
