package request

type OrderItemRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required,uuid4"`
	Quantity   int    `json:"quantity,omitempty"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
