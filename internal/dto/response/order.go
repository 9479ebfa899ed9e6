package response

import (
	"time"

	"food-order/internal/data/entity"
)

type OrderResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Items     []entity.OrderItem `json:"items"`
	Total     float64            `json:"total"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID.String(),
		UserID:    order.UserID.String(),
		Items:     order.Items,
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderToResponse(order))
	}
	return out
}
