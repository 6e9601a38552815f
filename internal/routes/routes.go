package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fud_backend/internal/storage"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging middleware
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	// Uploaded profile pictures are served back from here
	r.Static("/static/uploads", storage.UploadDir())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	AuthRoutes(r)
	UserRoutes(r)
	MenuRoutes(r)
	OrderRoutes(r)
	ReservationRoutes(r)
	ReviewRoutes(r)
	ScheduleRoutes(r)

	return r
}
