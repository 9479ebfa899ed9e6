package wire

import (
	"food-order/internal/adaptor"
	"food-order/pkg/middleware"
	"food-order/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, log))

		r.Post("/", orderHandler.Create)
		r.Get("/", orderHandler.List)
		r.Get("/{id}", orderHandler.Get)
		r.Patch("/{id}/status", orderHandler.UpdateStatus)
	})
}
