package routes

import (
	"github.com/gin-gonic/gin"

	controller "go-campus-canteen/controllers"
	"go-campus-canteen/middleware"
	"go-campus-canteen/store"
)

func MenuRoutes(incomingRoutes *gin.Engine, app *store.App) {
	incomingRoutes.GET("/menus", controller.GetMenus(app))
	incomingRoutes.GET("/menus/:menu_id", controller.GetMenu(app))

	staff := incomingRoutes.Group("/", middleware.StaffOnly())
	staff.POST("/menus", controller.CreateMenu(app))
	staff.PATCH("/menus/:menu_id", controller.UpdateMenu(app))
	staff.DELETE("/menus/:menu_id", controller.DeleteMenu(app))
}
