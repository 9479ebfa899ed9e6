package adaptor

import (
	"encoding/json"
	"net/http"

	"food-order/internal/dto/request"
	"food-order/internal/usecase"
	"food-order/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /api/v1/orders (protected)
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), caller.ID, &req)
	if err != nil {
		respondError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, order)
}

// Get handles GET /api/v1/orders/{id} (protected)
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	order, err := h.service.GetOrder(r.Context(), caller, id)
	if err != nil {
		respondError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, order)
}

// List handles GET /api/v1/orders?status= (protected)
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.ListOrders(r.Context(), caller, r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, orders)
}

// UpdateStatus handles PATCH /api/v1/orders/{id}/status (protected)
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), caller, id, req.Status)
	if err != nil {
		respondError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, order)
}

func (h *OrderHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "Order not found")
		return uuid.Nil, false
	}
	return id, true
}
