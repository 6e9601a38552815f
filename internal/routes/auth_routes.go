package routes

import (
	"fud_backend/internal/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes are the only unauthenticated endpoints besides /health.
func AuthRoutes(r *gin.Engine) {
	r.POST("/signup", controllers.Signup("customer", "User"))
	r.POST("/admin/signup", controllers.Signup("admin", "Admin"))
	r.POST("/staff/signup", controllers.Signup("staff", "Staff"))
	r.POST("/login", controllers.Login)
}
