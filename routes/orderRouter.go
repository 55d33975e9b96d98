package routes

import (
	"github.com/gin-gonic/gin"

	controller "go-campus-canteen/controllers"
	"go-campus-canteen/middleware"
	"go-campus-canteen/store"
)

func OrderRoutes(incomingRoutes *gin.Engine, app *store.App) {
	incomingRoutes.GET("/orders", controller.GetOrders(app))
	incomingRoutes.GET("/orders/:order_id", controller.GetOrder(app))
	incomingRoutes.POST("/orders/checkout", controller.Checkout(app))

	staff := incomingRoutes.Group("/", middleware.StaffOnly())
	staff.PATCH("/orders/:order_id/status", controller.UpdateOrderStatus(app))
	staff.GET("/reports/summary", controller.GetReportSummary(app))
}
