package routes

import (
	"fud_backend/internal/controllers"
	"fud_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(r *gin.Engine) {
	orders := r.Group("/")
	orders.Use(middleware.RequireAuth())
	{
		orders.GET("/orders", controllers.ListOrders)
		orders.GET("/orders/user/:id", controllers.ListOrdersByUser)
		orders.POST("/order_items", controllers.CreateOrderItem)
	}
}
