package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fud_backend/internal/config"
	"fud_backend/internal/models"
)

// ListMenus returns every menu with its items nested inline.
func ListMenus(c *gin.Context) {
	var menus []models.Menu
	if err := config.DB.Preload("Items").Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch menus"})
		return
	}
	c.JSON(http.StatusOK, menus)
}

// ListMenuItems lists all menu items across menus
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem retrieves a menu item by ID
func GetMenuItem(c *gin.Context) {
	id := c.Param("id")
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMenuItem adds a dish to an existing menu
func CreateMenuItem(c *gin.Context) {
	var input struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"required"`
		Available   *bool   `json:"available" binding:"required"`
		ImageURL    string  `json:"image_url"`
		MenuID      uint    `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, input.MenuID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	item := models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Available:   *input.Available,
		ImageURL:    input.ImageURL,
		MenuID:      input.MenuID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create menu item: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeleteMenuItem removes a menu item by ID
func DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.Status(http.StatusNoContent)
}
