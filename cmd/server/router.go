package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adoptly/adopt-api/internal/api"
	apiMiddleware "github.com/adoptly/adopt-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Pet reads are public; everything that writes, and all user
// data, sits behind the auth gate.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORS)

	authHandler := api.NewAuthHandler(app.jwtService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	userHandler := api.NewUserHandler(app.userStore)
	petHandler := api.NewPetHandler(app.petStore)
	adoptionHandler := api.NewAdoptionHandler(app.adoptionStore)
	reviewHandler := api.NewReviewHandler(app.reviewStore)
	donationHandler := api.NewDonationHandler(app.donationStore)

	// Public endpoints
	r.Post("/jwt", authHandler.IssueToken)
	r.Get("/pets", petHandler.List)
	r.Get("/pets/{id}", petHandler.GetByID)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/users", userHandler.Create)
		r.Get("/users", userHandler.List)
		r.Get("/users/{email}", userHandler.GetByEmail)
		r.Delete("/users/{id}", userHandler.Delete)

		r.Post("/pets", petHandler.Create)
		r.Delete("/pets/{id}", petHandler.Delete)

		r.Post("/adoptions", adoptionHandler.Create)
		r.Get("/adoptions", adoptionHandler.List)

		r.Post("/reviews", reviewHandler.Create)
		r.Get("/reviews", reviewHandler.List)

		r.Post("/donations", donationHandler.Create)
		r.Get("/donations", donationHandler.List)
	})

	// Liveness endpoints
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Adoption platform API is running")); err != nil {
			app.logger.Error("Failed to write liveness response", "error", err)
		}
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
