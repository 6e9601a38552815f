package routes

import (
	"fud_backend/internal/controllers"
	"fud_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ReviewRoutes(r *gin.Engine) {
	reviews := r.Group("/")
	reviews.Use(middleware.RequireAuth())
	{
		reviews.GET("/reviews", controllers.ListReviews)
		reviews.GET("/reviews/user/:id", controllers.ListReviewsByUser)
		reviews.POST("/reviews", controllers.CreateReview)
	}
}
