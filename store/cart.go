package store

import "go-campus-canteen/models"

// AddToCart merges into the existing line for the same menu item id,
// only bumping its quantity; notes and spicy level of an existing line
// are left as they were. Availability is the caller's guard: the cart
// does not check stock or IsAvailable.
func (a *App) AddToCart(item models.MenuItem, quantity int, notes, spicyLevel string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.cart {
		if a.cart[i].MenuItem.ID == item.ID {
			a.cart[i].Quantity += quantity
			a.saveCart()
			return
		}
	}
	a.cart = append(a.cart, models.CartItem{
		MenuItem:   item,
		Quantity:   quantity,
		Notes:      notes,
		SpicyLevel: spicyLevel,
	})
	a.saveCart()
}

func (a *App) RemoveFromCart(itemID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept := a.cart[:0]
	for _, line := range a.cart {
		if line.MenuItem.ID != itemID {
			kept = append(kept, line)
		}
	}
	a.cart = kept
	a.saveCart()
}

// UpdateCartQuantity clamps the quantity at zero and drops any line
// whose quantity ends up there.
func (a *App) UpdateCartQuantity(itemID string, quantity int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if quantity < 0 {
		quantity = 0
	}
	kept := a.cart[:0]
	for _, line := range a.cart {
		if line.MenuItem.ID == itemID {
			line.Quantity = quantity
		}
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	a.cart = kept
	a.saveCart()
}

func (a *App) ClearCart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clearCart()
}

func (a *App) clearCart() {
	a.cart = nil
	a.saveCart()
}

func (a *App) CartItems() []models.CartItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]models.CartItem, len(a.cart))
	copy(items, a.cart)
	return items
}

// CartTotal is recomputed from the lines on every call, never cached.
func (a *App) CartTotal() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cartTotal()
}

func (a *App) cartTotal() int {
	total := 0
	for _, line := range a.cart {
		total += line.MenuItem.Price * line.Quantity
	}
	return total
}

func (a *App) CartItemCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	count := 0
	for _, line := range a.cart {
		count += line.Quantity
	}
	return count
}
