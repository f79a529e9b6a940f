package wire

import (
	"swiftcard/internal/adaptor"
	"swiftcard/pkg/middleware"
	"swiftcard/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCard configures the card routes; listing and single reads are public
func wireCard(
	r chi.Router,
	handler *adaptor.Handler,
	tokens token.Service,
	log *zap.Logger,
) {
	auth := middleware.Auth(tokens, log)

	r.Route("/swift-card/cards", func(r chi.Router) {
		// Public listings
		r.Get("/", handler.Card.GetAll)
		r.Get("/{id}", handler.Card.GetByID)

		// Protected
		r.With(auth).Post("/", handler.Card.Create)
		r.With(auth).Get("/my-cards", handler.Card.GetMine)
		r.With(auth).Put("/{id}", handler.Card.Update)
		r.With(auth).Patch("/{id}", handler.Card.ToggleLike)
		r.With(auth).Delete("/{id}", handler.Card.Delete)
		r.With(auth).Patch("/biz-number/{id}", handler.Card.SetBizNumber)
	})
}
