package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-campus-canteen/helpers"
	"go-campus-canteen/models"
	"go-campus-canteen/store"
)

// Checkout places an order from the current cart. The non-empty cart
// check is a caller guard; the store treats placement as infallible
// once invoked (queue number allocated, lines snapshotted, order
// prepended, cart cleared).
func Checkout(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("uid")
		userName := c.GetString("username")
		if userID == "" {
			userID = "guest"
			userName = "Guest"
		}

		order, ok := app.PlaceOrder(userID, userName)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		notifyClients("newOrder", order)
		c.JSON(http.StatusOK, gin.H{
			"order":         order,
			"queue_number":  order.QueueNumber,
			"total_display": helpers.FormatRupiah(order.Total),
		})
	}
}

// GetOrders returns the collection newest-first. Staff see everything;
// students only their own orders, mirroring the two order screens.
func GetOrders(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		uid := c.GetString("uid")
		status := c.Query("status")

		var orders []models.Order
		for _, order := range app.Orders() {
			if role != models.RoleStaff && order.UserID != uid {
				continue
			}
			if status != "" && order.Status != status {
				continue
			}
			orders = append(orders, order)
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrder(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := app.Order(c.Param("order_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,eq=pending|eq=processing|eq=ready|eq=completed|eq=cancelled"`
}

// UpdateOrderStatus accepts any known status for any order; there is no
// transition table, so a jump like pending straight to completed goes
// through. The staff screens only ever send the forward path.
func UpdateOrderStatus(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, ok := app.UpdateOrderStatus(c.Param("order_id"), req.Status)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		notifyClients("orderStatus", order)
		c.JSON(http.StatusOK, order)
	}
}
