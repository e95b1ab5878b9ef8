package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/inkpost/inkpost-be/internal/api/handlers"
	"github.com/inkpost/inkpost-be/internal/auth"
	"github.com/inkpost/inkpost-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	postService services.PostServiceProvider,
	generateService services.GenerateServiceProvider,
	corsOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// 100 requests per client IP per 15 minutes, matching the public API's
	// published limit.
	r.Use(httprate.LimitByIP(100, 15*time.Minute))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	generateHandler := handlers.NewGenerateHandler(generateService)
	statusHandler := handlers.NewStatusHandler()

	requireAuth := tokens.Middleware()

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", statusHandler.Get)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.With(requireAuth).Post("/generate", generateHandler.Generate)

		r.Route("/posts", func(r chi.Router) {
			r.With(requireAuth).Post("/save", postHandler.Save)
			r.With(requireAuth).Get("/user", postHandler.GetUserPosts)
			r.Get("/public", postHandler.GetPublicPosts)
			r.Get("/{id}", postHandler.GetByID)
			r.With(requireAuth).Put("/{id}", postHandler.Update)
			r.With(requireAuth).Delete("/{id}", postHandler.Delete)
		})
	})

	return r
}
