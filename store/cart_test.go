package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-campus-canteen/models"
)

func testItem(id string, price int) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        "Item " + id,
		Price:       price,
		Category:    models.CategorySnack,
		Stock:       10,
		IsAvailable: true,
	}
}

func TestAddToCartMergesSameItem(t *testing.T) {
	app := New(nil)

	app.AddToCart(testItem("1", 15000), 2, "no krupuk", models.SpicyMild)
	app.AddToCart(testItem("1", 15000), 3, "extra krupuk", models.SpicySpicy)

	items := app.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	// merging only bumps quantity; the existing line keeps its notes
	// and spicy level
	assert.Equal(t, "no krupuk", items[0].Notes)
	assert.Equal(t, models.SpicyMild, items[0].SpicyLevel)
}

func TestAddToCartDistinctItems(t *testing.T) {
	app := New(nil)

	app.AddToCart(testItem("1", 15000), 1, "", "")
	app.AddToCart(testItem("2", 3000), 2, "", "")

	assert.Len(t, app.CartItems(), 2)
	assert.Equal(t, 15000+2*3000, app.CartTotal())
	assert.Equal(t, 3, app.CartItemCount())
}

func TestUpdateCartQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "positive quantity sticks", quantity: 4, wantLines: 1, wantQty: 4},
		{name: "zero removes the line", quantity: 0, wantLines: 0},
		{name: "negative clamps to zero and removes", quantity: -3, wantLines: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New(nil)
			app.AddToCart(testItem("1", 15000), 2, "", "")

			app.UpdateCartQuantity("1", tt.quantity)

			items := app.CartItems()
			require.Len(t, items, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, items[0].Quantity)
			}
		})
	}
}

func TestUpdateCartQuantityUnknownIDIsNoOp(t *testing.T) {
	app := New(nil)
	app.AddToCart(testItem("1", 15000), 2, "", "")

	app.UpdateCartQuantity("missing", 7)

	items := app.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	app := New(nil)
	app.AddToCart(testItem("1", 15000), 1, "", "")
	app.AddToCart(testItem("2", 3000), 1, "", "")

	app.RemoveFromCart("1")
	require.Len(t, app.CartItems(), 1)
	assert.Equal(t, "2", app.CartItems()[0].MenuItem.ID)

	// removing an id that is not there changes nothing
	app.RemoveFromCart("1")
	assert.Len(t, app.CartItems(), 1)
}

func TestCartTotalsRecomputedOnRead(t *testing.T) {
	app := New(nil)
	assert.Equal(t, 0, app.CartTotal())
	assert.Equal(t, 0, app.CartItemCount())

	app.AddToCart(testItem("1", 15000), 2, "", "")
	assert.Equal(t, 30000, app.CartTotal())

	app.UpdateCartQuantity("1", 3)
	assert.Equal(t, 45000, app.CartTotal())
	assert.Equal(t, 3, app.CartItemCount())
}

func TestClearCart(t *testing.T) {
	app := New(nil)
	app.AddToCart(testItem("1", 15000), 2, "", "")

	app.ClearCart()

	assert.Empty(t, app.CartItems())
	assert.Equal(t, 0, app.CartTotal())
}
