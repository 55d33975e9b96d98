package models

const (
	SpicyMild   = "mild"
	SpicyMedium = "medium"
	SpicySpicy  = "spicy"
)

// CartItem holds a copy of the menu item it was added from. The copy is
// what gets snapshotted at checkout, so later catalog edits never change
// a line that is already in the cart.
type CartItem struct {
	MenuItem   MenuItem `json:"menu_item"`
	Quantity   int      `json:"quantity" validate:"required,min=1"`
	Notes      string   `json:"notes,omitempty"`
	SpicyLevel string   `json:"spicy_level,omitempty" validate:"omitempty,eq=mild|eq=medium|eq=spicy"`
}
