package routes

import (
	"github.com/gin-gonic/gin"

	controller "go-campus-canteen/controllers"
	"go-campus-canteen/store"
)

func CartRoutes(incomingRoutes *gin.Engine, app *store.App) {
	incomingRoutes.GET("/cart", controller.GetCart(app))
	incomingRoutes.POST("/cart", controller.AddToCart(app))
	incomingRoutes.PATCH("/cart/:item_id", controller.UpdateCartQuantity(app))
	incomingRoutes.DELETE("/cart/:item_id", controller.RemoveFromCart(app))
}
