package usecase

import (
	"context"
	"time"

	"food-order/internal/data/entity"
	"food-order/internal/data/repository"
	"food-order/internal/dto/request"
	"food-order/internal/dto/response"
	"food-order/pkg/apperr"
	"food-order/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrder(ctx context.Context, caller utils.Caller, id uuid.UUID) (*response.OrderResponse, error)
	ListOrders(ctx context.Context, caller utils.Caller, statusFilter string) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, caller utils.Caller, id uuid.UUID, nextStatus string) (*response.OrderResponse, error)
}

type orderService struct {
	menu   repository.MenuRepository
	orders repository.OrderRepository
	log    *zap.Logger
}

func NewOrderService(menu repository.MenuRepository, orders repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		menu:   menu,
		orders: orders,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, apperr.Newf(apperr.KindInvalidInput, "Validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Normalize line items: quantity is at least 1
	items := make([]entity.OrderItem, len(req.Items))
	for i, it := range req.Items {
		menuItemID, err := uuid.Parse(it.MenuItemID)
		if err != nil {
			return nil, apperr.Newf(apperr.KindInvalidInput, "Invalid menu item ID: %s", it.MenuItemID)
		}

		quantity := it.Quantity
		if quantity < 1 {
			quantity = 1
		}

		items[i] = entity.OrderItem{
			MenuItemID: menuItemID,
			Quantity:   quantity,
		}
	}

	// Total is computed once, before anything is persisted; a failure here
	// leaves no partial order record.
	total, err := s.menu.ComputeOrderTotal(ctx, items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Items:  items,
		Total:  total,
		Status: entity.OrderStatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create order", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("total", total),
		zap.Int("line_items", len(items)))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, caller utils.Caller, id uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to find order", err)
	}
	if order == nil {
		return nil, apperr.New(apperr.KindNotFound, "Order not found")
	}

	// Admins bypass the ownership check
	if !caller.IsAdmin() && order.UserID != caller.ID {
		s.log.Warn("Order access denied",
			zap.String("order_id", id.String()),
			zap.String("caller_id", caller.ID.String()))
		return nil, apperr.New(apperr.KindForbidden, "Forbidden")
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, caller utils.Caller, statusFilter string) ([]response.OrderResponse, error) {
	filter := repository.OrderFilter{}

	if statusFilter != "" {
		status := entity.OrderStatus(statusFilter)
		filter.Status = &status
	}

	// Non-admins only ever see their own orders
	if !caller.IsAdmin() {
		userID := caller.ID
		filter.UserID = &userID
	}

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to list orders", err)
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) UpdateStatus(ctx context.Context, caller utils.Caller, id uuid.UUID, nextStatus string) (*response.OrderResponse, error) {
	if !entity.ValidOrderStatus(nextStatus) {
		return nil, apperr.Newf(apperr.KindInvalidInput, "Invalid status: %s", nextStatus)
	}
	next := entity.OrderStatus(nextStatus)

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to find order", err)
	}
	if order == nil {
		return nil, apperr.New(apperr.KindNotFound, "Order not found")
	}

	// Admin transitions are unconstrained. A non-admin owner may only cancel
	// a pending order; everyone else is rejected.
	allowed := caller.IsAdmin() ||
		(order.UserID == caller.ID &&
			next == entity.OrderStatusCancelled &&
			order.Status == entity.OrderStatusPending)

	if !allowed {
		s.log.Warn("Status transition denied",
			zap.String("order_id", id.String()),
			zap.String("caller_id", caller.ID.String()),
			zap.String("from", string(order.Status)),
			zap.String("to", nextStatus))
		return nil, apperr.New(apperr.KindForbidden, "Forbidden")
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", nextStatus))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to update order status", err)
	}
	if updated == nil {
		return nil, apperr.New(apperr.KindNotFound, "Order not found")
	}

	s.log.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("from", string(order.Status)),
		zap.String("to", nextStatus))

	resp := response.OrderToResponse(updated)
	return &resp, nil
}
