package routes

import (
	"github.com/gin-gonic/gin"

	controller "go-campus-canteen/controllers"
	"go-campus-canteen/store"
)

func UserRoutes(incomingRoutes *gin.Engine, app *store.App) {
	incomingRoutes.POST("/users/signup", controller.SignUp(app))
	incomingRoutes.POST("/users/login", controller.Login(app))
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}

func ProfileRoutes(incomingRoutes *gin.Engine, app *store.App) {
	incomingRoutes.GET("/users/profile", controller.GetProfile(app))
	incomingRoutes.POST("/users/logout", controller.Logout(app))
}
