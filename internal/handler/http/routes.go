package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/vip-motors/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	// forwarded headers are client controlled unless a proxy rewrites them
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		withSecurityHeaders,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader, "Retry-After"},
			AllowCredentials: true,
			MaxAge:           int((12 * time.Hour).Seconds()),
		}),
		middleware.Compress(compressionLevel, "application/json"),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/refresh", h.refresh)
			r.Post("/forgot-password", h.forgotPassword)
			r.Post("/reset-password", h.resetPassword)
			r.Post("/verify-email", h.verifyEmail)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/resend-verification", h.resendVerification)
				r.Get("/me", h.me)
				r.Post("/logout", h.logout)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Post("/login", h.adminLogin)
			r.With(h.auth, h.authorize(models.RoleAdmin)).Post("/register", h.adminRegister)
		})

		r.Route("/hypercars", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.optionalAuth)
				r.Get("/", h.listHypercars)
				r.Get("/featured", h.featuredHypercars)
				r.Get("/brands", h.hypercarBrands)
				r.Get("/stats", h.hypercarStats)
				r.Get("/{id}", h.getHypercar)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/{id}/favorite", h.addFavorite)
				r.Delete("/{id}/favorite", h.removeFavorite)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth, h.authorize(models.RoleAdmin))
				r.Post("/", h.createHypercar)
				r.Put("/{id}", h.updateHypercar)
				r.Delete("/{id}", h.deleteHypercar)
				r.Post("/{id}/images/upload-url", h.imageUploadURL)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.getProfile)
			r.Put("/me", h.updateProfile)
			r.Delete("/me", h.deactivateProfile)
			r.Get("/favorites", h.userFavorites)

			r.Group(func(r chi.Router) {
				r.Use(h.authorize(models.RoleAdmin))
				r.Get("/", h.listUsers)
				r.Get("/{id}", h.getUser)
				r.Put("/{id}", h.updateUser)
				r.Delete("/{id}", h.deactivateUser)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/overview", h.dashboardOverview)
			r.Get("/favorites", h.dashboardFavorites)
			r.Get("/recommendations", h.dashboardRecommendations)
			r.Get("/activity", h.dashboardActivity)
			r.Get("/search", h.dashboardSearch)
			r.Get("/compare", h.dashboardCompare)
		})
	})

	return router
}
