package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.settings.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5, "application/json"))
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	router.Get("/api/health", h.health)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.limitJSONBody)
			r.Post("/signup", h.signup)
			r.Post("/signin", h.signin)
		})

		r.With(h.auth).Get("/me", h.me)
	})

	// the catalog is public; a valid token only records the uploader
	router.Route("/api/resumes", func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Get("/", h.listResumes)
		r.Post("/upload", h.uploadResume)
		r.Delete("/{id}", h.deleteResume)
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}
