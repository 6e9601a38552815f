package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fud_backend/internal/models"
)

func menuRouter() *gin.Engine {
	r := gin.New()
	r.GET("/menu", ListMenus)
	r.GET("/menu_items", ListMenuItems)
	r.GET("/menu_items/:id", GetMenuItem)
	r.POST("/menu-items", CreateMenuItem)
	r.DELETE("/menu-items/:id", DeleteMenuItem)
	return r
}

func TestListMenusNestsItems(t *testing.T) {
	db := setupTestDB(t)
	router := menuRouter()
	item := createTestMenuItem(t, db, "Pancakes", 600)

	w := jsonRequest(t, router, http.MethodGet, "/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var menus []models.Menu
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	assert.Len(t, menus, 1)
	assert.Len(t, menus[0].Items, 1)
	assert.Equal(t, item.Name, menus[0].Items[0].Name)
}

func TestGetMenuItemNotFound(t *testing.T) {
	setupTestDB(t)
	router := menuRouter()

	w := jsonRequest(t, router, http.MethodGet, "/menu_items/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuItem(t *testing.T) {
	db := setupTestDB(t)
	router := menuRouter()
	menu := models.Menu{Name: "Dinner", Description: "evening card", Available: true}
	assert.NoError(t, db.Create(&menu).Error)

	w := jsonRequest(t, router, http.MethodPost, "/menu-items", gin.H{
		"name":        "Steak Frites",
		"description": "with crispy fries",
		"price":       1500,
		"available":   true,
		"menu_id":     menu.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.MenuItem
	assert.NoError(t, db.Where("name = ?", "Steak Frites").First(&item).Error)
	assert.Equal(t, menu.ID, item.MenuID)
}

func TestCreateMenuItemUnknownMenu(t *testing.T) {
	setupTestDB(t)
	router := menuRouter()

	w := jsonRequest(t, router, http.MethodPost, "/menu-items", gin.H{
		"name":        "Orphan Dish",
		"description": "no menu",
		"price":       100,
		"available":   true,
		"menu_id":     9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMenuItem(t *testing.T) {
	db := setupTestDB(t)
	router := menuRouter()
	item := createTestMenuItem(t, db, "Pancakes", 600)

	w := jsonRequest(t, router, http.MethodDelete, "/menu-items/"+itoa(item.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = jsonRequest(t, router, http.MethodDelete, "/menu-items/"+itoa(item.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the parent menu survives its items
	var menus int64
	db.Model(&models.Menu{}).Count(&menus)
	assert.EqualValues(t, 1, menus)
}
