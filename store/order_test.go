package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-campus-canteen/models"
)

func TestOrderDiscount(t *testing.T) {
	tests := []struct {
		subtotal int
		want     int
	}{
		{subtotal: 15000, want: 0},
		{subtotal: 30000, want: 0}, // threshold is strictly greater-than
		{subtotal: 30001, want: 3000},
		{subtotal: 42000, want: 4200},
		{subtotal: 42005, want: 4201}, // rounded, not truncated
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, orderDiscount(tt.subtotal), "subtotal %d", tt.subtotal)
	}
}

func TestPlaceOrderComputesTotals(t *testing.T) {
	app := New(nil)
	app.AddToCart(testItem("1", 15000), 2, "", models.SpicySpicy)
	app.AddToCart(testItem("4", 3000), 4, "", "")

	order, ok := app.PlaceOrder("student-1", "Student")
	require.True(t, ok)

	assert.Equal(t, 42000, order.Subtotal)
	assert.Equal(t, 4200, order.Discount)
	assert.Equal(t, 37800, order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "student-1", order.UserID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, models.SpicySpicy, order.Items[0].SpicyLevel)
	assert.NotEmpty(t, order.Items[0].ID)
	assert.NotEqual(t, order.Items[0].ID, order.Items[1].ID)
}

func TestPlaceOrderEmptyCartIsRejected(t *testing.T) {
	app := New(nil)
	before := len(app.Orders())

	_, ok := app.PlaceOrder("student-1", "Student")

	assert.False(t, ok)
	assert.Len(t, app.Orders(), before)
	assert.Equal(t, 1, app.CurrentQueueNumber(), "queue counter must not advance")
}

func TestPlaceOrderClearsCartAndPrepends(t *testing.T) {
	app := New(nil)
	app.AddToCart(testItem("1", 15000), 1, "", "")

	order, ok := app.PlaceOrder("student-1", "Student")
	require.True(t, ok)

	assert.Empty(t, app.CartItems())
	orders := app.Orders()
	require.NotEmpty(t, orders)
	assert.Equal(t, order.ID, orders[0].ID, "newest order sorts first")
}

func TestQueueNumbersAreSequentialFromOne(t *testing.T) {
	app := New(nil)

	for want := 1; want <= 3; want++ {
		app.AddToCart(testItem("1", 15000), 1, "", "")
		order, ok := app.PlaceOrder("student-1", "Student")
		require.True(t, ok)
		assert.Equal(t, want, order.QueueNumber)
	}
}

func TestOrderSnapshotSurvivesCatalogEdit(t *testing.T) {
	app := New(nil)
	item, ok := app.MenuItem("1")
	require.True(t, ok)

	app.AddToCart(item, 1, "", "")
	order, ok := app.PlaceOrder("student-1", "Student")
	require.True(t, ok)

	item.Name = "Renamed"
	item.Price = 99000
	app.UpdateMenuItem(item)

	placed, ok := app.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, "Seblak", placed.Items[0].MenuItemName)
	assert.Equal(t, 15000, placed.Items[0].Price)
}

func TestUpdateOrderStatus(t *testing.T) {
	app := New(nil)
	app.AddToCart(testItem("1", 15000), 3, "", "")
	order, ok := app.PlaceOrder("student-1", "Student")
	require.True(t, ok)

	// non-adjacent jump must be accepted: there is no transition table
	updated, ok := app.UpdateOrderStatus(order.ID, models.StatusCompleted)
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(order.UpdatedAt))

	// money fields and items stay frozen
	assert.Equal(t, order.Subtotal, updated.Subtotal)
	assert.Equal(t, order.Discount, updated.Discount)
	assert.Equal(t, order.Total, updated.Total)
	assert.Equal(t, order.Items, updated.Items)
	assert.Equal(t, order.CreatedAt, updated.CreatedAt)
}

func TestUpdateOrderStatusUnknownIDIsNoOp(t *testing.T) {
	app := New(nil)
	before := app.Orders()

	_, ok := app.UpdateOrderStatus("order-missing", models.StatusReady)

	assert.False(t, ok)
	assert.Equal(t, before, app.Orders())
}

func TestUpdateOrderStatusTouchesOnlyTarget(t *testing.T) {
	app := New(nil)
	app.AddToCart(testItem("1", 15000), 1, "", "")
	first, _ := app.PlaceOrder("student-1", "Student")
	app.AddToCart(testItem("2", 3000), 1, "", "")
	second, _ := app.PlaceOrder("student-1", "Student")

	_, ok := app.UpdateOrderStatus(first.ID, models.StatusProcessing)
	require.True(t, ok)

	other, ok := app.Order(second.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, other.Status)
}

func TestSampleOrderFixtureIsFallback(t *testing.T) {
	app := New(nil)

	orders := app.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
	// the fixture's discount predates the 10% rule and is shipped as is
	assert.Equal(t, 42000, orders[0].Subtotal)
	assert.Equal(t, 7000, orders[0].Discount)
	assert.Equal(t, 35000, orders[0].Total)
	assert.Equal(t, time.Date(2025, time.November, 23, 10, 0, 0, 0, time.Local), orders[0].CreatedAt)
}
