package routes

import (
	"fud_backend/internal/controllers"
	"fud_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(r *gin.Engine) {
	menu := r.Group("/")
	menu.Use(middleware.RequireAuth())
	{
		menu.GET("/menu", controllers.ListMenus)
		menu.GET("/menu_items", controllers.ListMenuItems)
		menu.GET("/menu_items/:id", controllers.GetMenuItem)
		menu.POST("/menu-items", controllers.CreateMenuItem)
		menu.DELETE("/menu-items/:id", controllers.DeleteMenuItem)
	}
}
