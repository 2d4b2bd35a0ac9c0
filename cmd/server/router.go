package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/inkpost/inkpost-api/internal/api"
	apiMiddleware "github.com/inkpost/inkpost-api/internal/api/middleware"
	"github.com/inkpost/inkpost-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Wrong methods get the same JSON error shape as everything else.
	// MethodNotAllowed fires before route middleware, so a rejected
	// method never consumes a rate-limit slot.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	postHandler := api.NewPostHandler(app.postService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Generation endpoint: the only rate-limited operation. It lives
		// outside /posts so a wrong-method request gets a 405 instead of
		// matching the {slug} read route.
		r.With(apiMiddleware.RateLimit(app.limiter)).
			Post("/generate-post", postHandler.GeneratePost)

		// Read endpoints for rendering stored content.
		r.Get("/posts", postHandler.ListPosts)
		r.Get("/posts/{slug}", postHandler.GetPost)
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
