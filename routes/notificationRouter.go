package routes

import (
	"github.com/gin-gonic/gin"

	controller "go-campus-canteen/controllers"
	"go-campus-canteen/store"
)

func NotificationRoutes(incomingRoutes *gin.Engine, app *store.App) {
	incomingRoutes.GET("/notifications", controller.GetNotifications(app))
}
