package wire

import (
	"swiftcard/internal/adaptor"
	"swiftcard/pkg/middleware"
	"swiftcard/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures registration, login and user management routes
func wireUser(
	r chi.Router,
	handler *adaptor.Handler,
	tokens token.Service,
	log *zap.Logger,
) {
	auth := middleware.Auth(tokens, log)

	r.Route("/swift-card/users", func(r chi.Router) {
		// Public: registration and sign-in
		r.Post("/", handler.Auth.Register)
		r.Post("/login", handler.Auth.Login)

		// Protected: role checks happen in the service policies
		r.With(auth).Get("/", handler.User.List)
		r.With(auth).Get("/{id}", handler.User.GetByID)
		r.With(auth).Put("/{id}", handler.User.Update)
		r.With(auth).Patch("/{id}", handler.User.ToggleBusiness)
		r.With(auth).Delete("/{id}", handler.User.Delete)
	})
}
