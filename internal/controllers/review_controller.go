package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fud_backend/internal/config"
	"fud_backend/internal/models"
)

// CreateReview records a rating. menu_item_id and comment are optional; the
// rating range is deliberately not checked here (see the tests documenting it).
func CreateReview(c *gin.Context) {
	var input struct {
		UserID     uint   `json:"user_id"`
		MenuItemID *uint  `json:"menu_item_id"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID == 0 || input.Rating == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	review := models.Review{
		UserID:     input.UserID,
		MenuItemID: input.MenuItemID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           review.ID,
		"user_id":      review.UserID,
		"menu_item_id": review.MenuItemID,
		"rating":       review.Rating,
		"comment":      review.Comment,
		"created_at":   review.CreatedAt.Format(time.RFC3339),
	})
}

// ListReviews lists every review
func ListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Preload("User").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviewResponses(reviews))
}

// ListReviewsByUser lists one user's reviews
func ListReviewsByUser(c *gin.Context) {
	userID := c.Param("id")
	var reviews []models.Review
	if err := config.DB.Preload("User").Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviewResponses(reviews))
}

func reviewResponses(reviews []models.Review) []gin.H {
	out := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, gin.H{
			"id":           r.ID,
			"user_id":      r.UserID,
			"user_name":    r.User.Name,
			"menu_item_id": r.MenuItemID,
			"rating":       r.Rating,
			"comment":      r.Comment,
			"created_at":   r.CreatedAt.Format(time.RFC3339),
			"updated_at":   r.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
