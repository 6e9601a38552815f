package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fud_backend/internal/config"
	"fud_backend/internal/middleware"
	"fud_backend/internal/models"
)

// GetMe returns the profile of the authenticated user.
func GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// GetUser retrieves a user profile by ID
func GetUser(c *gin.Context) {
	id := c.Param("id")
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// ListUsers lists all users
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// DeleteUser removes a user and everything they own: reviews, reservations,
// then each order's line items, then the orders, then the user row itself.
// Schedules are left alone. All of it happens in one transaction.
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	if err := cascadeDeleteUser(tx, &user); err != nil {
		tx.Rollback()
		logrus.WithField("user_id", user.ID).WithError(err).Error("user cascade delete rolled back")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user", "details": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User '%s' deleted successfully", user.Name)})
}

func cascadeDeleteUser(tx *gorm.DB, user *models.User) error {
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Reservation{}).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := tx.Where("user_id = ?", user.ID).Find(&orders).Error; err != nil {
		return err
	}
	for _, order := range orders {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Order{}).Error; err != nil {
		return err
	}

	return tx.Delete(user).Error
}
