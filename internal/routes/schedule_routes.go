package routes

import (
	"fud_backend/internal/controllers"
	"fud_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ScheduleRoutes(r *gin.Engine) {
	schedules := r.Group("/")
	schedules.Use(middleware.RequireAuth())
	{
		schedules.GET("/schedules", controllers.ListSchedules)
		schedules.POST("/schedules", controllers.CreateSchedule)
		schedules.PATCH("/schedules/:id", controllers.UpdateSchedule)
		schedules.DELETE("/schedules/:id", controllers.DeleteSchedule)
	}
}
