package wire

import (
	"food-order/internal/adaptor"
	"food-order/pkg/middleware"
	"food-order/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Authenticate(tokens, log)).Get("/api/v1/users/me", userHandler.Me)

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.RequireRoles(log, "admin"),
	).Get("/api/v1/users", userHandler.List)
}
