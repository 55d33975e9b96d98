package store

import (
	"math"
	"time"

	"github.com/google/uuid"

	"go-campus-canteen/models"
)

// Orders above this subtotal get a flat 10% off. Fixed constants, not
// configuration.
const (
	discountThreshold = 30000
	discountRate      = 0.10
)

func orderDiscount(subtotal int) int {
	if subtotal <= discountThreshold {
		return 0
	}
	return int(math.Round(float64(subtotal) * discountRate))
}

// PlaceOrder creates an order from the current cart: it allocates the
// next queue number, freezes every cart line into an order item with a
// fresh id, prepends the order so the newest sorts first, and clears
// the cart. It reports false without touching anything when the cart
// is empty. Once placed, an order's items and money fields never
// change again; only its status and updated_at do.
func (a *App) PlaceOrder(userID, userName string) (models.Order, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.cart) == 0 {
		return models.Order{}, false
	}

	subtotal := a.cartTotal()
	discount := orderDiscount(subtotal)
	now := time.Now()

	items := make([]models.OrderItem, 0, len(a.cart))
	for _, line := range a.cart {
		items = append(items, models.OrderItem{
			ID:            "item-" + uuid.NewString(),
			MenuItemID:    line.MenuItem.ID,
			MenuItemName:  line.MenuItem.Name,
			MenuItemImage: line.MenuItem.Image,
			Quantity:      line.Quantity,
			Price:         line.MenuItem.Price,
			Notes:         line.Notes,
			SpicyLevel:    line.SpicyLevel,
		})
	}

	order := models.Order{
		ID:          "order-" + uuid.NewString(),
		QueueNumber: a.nextQueueNumber(),
		UserID:      userID,
		UserName:    userName,
		Items:       items,
		Subtotal:    subtotal,
		Discount:    discount,
		Total:       subtotal - discount,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	a.orders = append([]models.Order{order}, a.orders...)
	a.saveOrders()
	a.clearCart()
	return order, true
}

// UpdateOrderStatus assigns the given status to the order and refreshes
// its updated_at. There is no transition table: any status can be
// assigned to any order, matching the original store. The staff routes
// only ever drive the forward path. An unknown order id is a no-op.
func (a *App) UpdateOrderStatus(orderID, status string) (models.Order, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.orders {
		if a.orders[i].ID == orderID {
			a.orders[i].Status = status
			a.orders[i].UpdatedAt = time.Now()
			a.saveOrders()
			return a.orders[i], true
		}
	}
	return models.Order{}, false
}

// Orders returns the collection newest-first.
func (a *App) Orders() []models.Order {
	a.mu.Lock()
	defer a.mu.Unlock()

	orders := make([]models.Order, len(a.orders))
	copy(orders, a.orders)
	return orders
}

func (a *App) Order(orderID string) (models.Order, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, order := range a.orders {
		if order.ID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}
