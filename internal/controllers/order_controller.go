package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fud_backend/internal/config"
	"fud_backend/internal/models"
)

// CreateOrderItem places a line item. Every call opens a fresh order: the order
// row is created with total 0, the menu item's current price is copied onto the
// line item, and the order total is set to quantity*price. One transaction.
func CreateOrderItem(c *gin.Context) {
	var input struct {
		UserID     uint `json:"user_id"`
		MenuItemID uint `json:"menu_item_id"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID == 0 || input.MenuItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and menu_item_id are required"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, input.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	order := models.Order{UserID: input.UserID, Total: 0}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create order: " + err.Error()})
		return
	}

	orderItem := models.OrderItem{
		OrderID:    order.ID,
		MenuItemID: input.MenuItemID,
		Quantity:   input.Quantity,
		Price:      menuItem.Price,
	}
	if err := tx.Create(&orderItem).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create order item: " + err.Error()})
		return
	}

	order.Total = float64(orderItem.Quantity) * orderItem.Price
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update order total: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, orderItem)
}

// ListOrders lists every order in the system
func ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items").Preload("User").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orderResponses(orders))
}

// ListOrdersByUser lists the orders belonging to one user
func ListOrdersByUser(c *gin.Context) {
	userID := c.Param("id")
	var orders []models.Order
	if err := config.DB.Preload("Items").Preload("User").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orderResponses(orders))
}

func orderResponses(orders []models.Order) []gin.H {
	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		out = append(out, orderResponse(&orders[i]))
	}
	return out
}

// orderResponse serializes an order. The total is always recomputed from the
// line items; the stored column may be stale.
func orderResponse(o *models.Order) gin.H {
	return gin.H{
		"id":         o.ID,
		"user_id":    o.UserID,
		"user_name":  o.User.Name,
		"total":      o.TotalAmount(),
		"created_at": o.CreatedAt.Format(time.RFC3339),
		"updated_at": o.UpdatedAt.Format(time.RFC3339),
		"items":      o.Items,
	}
}
