package routes

import (
	"fud_backend/internal/controllers"
	"fud_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.Engine) {
	users := r.Group("/")
	users.Use(middleware.RequireAuth())
	{
		users.POST("/logout", controllers.Logout)
		users.GET("/me", controllers.GetMe)
		users.GET("/users", controllers.ListUsers)
		users.GET("/users/:id", controllers.GetUser)
		users.DELETE("/users/:id", controllers.DeleteUser)
	}
}
