package adaptor

import (
	"net/http"

	"food-order/internal/usecase"
	"food-order/pkg/apperr"
	"food-order/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	User  *UserHandler
	Menu  *MenuHandler
	Order *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		User:  NewUserHandler(service.User, log),
		Menu:  NewMenuHandler(service.Menu, log),
		Order: NewOrderHandler(service.Order, log),
	}
}

// respondError maps a service error to the envelope via its kind.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := apperr.KindOf(err)

	if kind == apperr.KindInternal {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
	} else {
		log.Warn(operation+" failed",
			zap.Error(err),
			zap.String("kind", kind.String()),
			zap.String("operation", operation))
	}

	utils.ResponseError(w, apperr.HTTPStatus(err), apperr.MessageOf(err))
}
