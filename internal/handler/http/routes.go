package http

import (
	"net/http"

	"github.com/MKhiriev/streama/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecover, h.withTraceID, h.withLogging, h.withCORS(), h.withRateLimit)

	admin := h.requireRole(models.RoleAdmin)

	router.Route(h.prefix(), func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Post("/signup", h.signUp)
			r.Post("/signin", h.signIn)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/signout", h.signOut)
				r.Patch("/change-password", h.changePassword)
				r.Patch("/change-email", h.changeEmail)
				r.With(admin).Patch("/{id}", h.assignRole)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Patch("/recover", h.recoverUser)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.With(admin).Post("/", h.createUser)
				r.With(admin).Get("/", h.findAllUsers)
				r.Get("/{id}", h.findUser)
				r.Patch("/{id}", h.updateUser)
				r.Delete("/{id}", h.removeUser)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth, withGZip)
			r.Route("/movies", h.catalogRoutes(models.MediaMovie))
			r.Route("/tv", h.catalogRoutes(models.MediaTV))
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}

// catalogRoutes registers the listing, details and search routes of media.
func (h *Handler) catalogRoutes(media models.MediaType) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/details", h.catalogDetails(media))
		r.Get("/search", h.catalogSearch(media))
		r.Get("/{category}", h.catalogList(media))
	}
}

func (h *Handler) prefix() string {
	if h.settings.apiPrefix == "" {
		return "/"
	}
	return h.settings.apiPrefix
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
