package request

type MenuItemRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// MenuItemUpdateRequest is a patch: only the fields present are applied.
type MenuItemUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}
