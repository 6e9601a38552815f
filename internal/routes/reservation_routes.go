package routes

import (
	"fud_backend/internal/controllers"
	"fud_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ReservationRoutes(r *gin.Engine) {
	reservations := r.Group("/")
	reservations.Use(middleware.RequireAuth())
	{
		reservations.GET("/reservations", controllers.ListReservations)
		reservations.GET("/reservations/user/:id", controllers.ListReservationsByUser)
		reservations.POST("/reservations", controllers.CreateReservation)
	}
}
