package models

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// OrderItem is a frozen copy of one cart line taken at checkout.
type OrderItem struct {
	ID            string `json:"id"`
	MenuItemID    string `json:"menu_item_id"`
	MenuItemName  string `json:"menu_item_name"`
	MenuItemImage string `json:"menu_item_image"`
	Quantity      int    `json:"quantity"`
	Price         int    `json:"price"`
	Notes         string `json:"notes,omitempty"`
	SpicyLevel    string `json:"spicy_level,omitempty"`
}

type Order struct {
	ID          string      `json:"id"`
	QueueNumber int         `json:"queue_number"`
	UserID      string      `json:"user_id"`
	UserName    string      `json:"user_name"`
	Items       []OrderItem `json:"items"`
	Subtotal    int         `json:"subtotal"`
	Discount    int         `json:"discount"`
	Total       int         `json:"total"`
	Status      string      `json:"status" validate:"required,eq=pending|eq=processing|eq=ready|eq=completed|eq=cancelled"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
