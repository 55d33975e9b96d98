package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-canteen/helpers"
	"go-campus-canteen/store"
)

type addToCartRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=0"`
	Notes      string `json:"notes"`
	SpicyLevel string `json:"spicy_level" validate:"omitempty,eq=mild|eq=medium|eq=spicy"`
}

// AddToCart guards availability on behalf of the store: the cart itself
// accepts anything it is handed, so an unavailable item has to be
// rejected here before the call is made.
func AddToCart(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, ok := app.MenuItem(req.MenuItemID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if !item.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu item is not available"})
			return
		}
		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}
		app.AddToCart(item, quantity, req.Notes, req.SpicyLevel)
		cartSummary(c, app)
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func UpdateCartQuantity(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.UpdateCartQuantity(c.Param("item_id"), req.Quantity)
		cartSummary(c, app)
	}
}

func RemoveFromCart(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		app.RemoveFromCart(c.Param("item_id"))
		cartSummary(c, app)
	}
}

func GetCart(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartSummary(c, app)
	}
}

func cartSummary(c *gin.Context, app *store.App) {
	total := app.CartTotal()
	c.JSON(http.StatusOK, gin.H{
		"items":         app.CartItems(),
		"total":         total,
		"total_display": helpers.FormatRupiah(total),
		"item_count":    app.CartItemCount(),
	})
}
