package wire

import (
	"food-order/internal/adaptor"
	"food-order/pkg/middleware"
	"food-order/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	r.Route("/api/v1/menu", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", menuHandler.List)
		r.Get("/{id}", menuHandler.Get)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens, log))
			r.Use(middleware.RequireRoles(log, "admin"))

			r.Post("/", menuHandler.Create)
			r.Put("/{id}", menuHandler.Update)
			r.Delete("/{id}", menuHandler.Remove)
		})
	})
}
