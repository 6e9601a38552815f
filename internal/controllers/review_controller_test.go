package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fud_backend/internal/models"
)

func reviewRouter() *gin.Engine {
	r := gin.New()
	r.GET("/reviews", ListReviews)
	r.GET("/reviews/user/:id", ListReviewsByUser)
	r.POST("/reviews", CreateReview)
	return r
}

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	router := reviewRouter()
	user := createTestUser(t, db, "Alice", "alice@example.com", "0700000001")
	item := createTestMenuItem(t, db, "Pizza", 1200)

	w := jsonRequest(t, router, http.MethodPost, "/reviews", gin.H{
		"user_id":      user.ID,
		"menu_item_id": item.ID,
		"rating":       5,
		"comment":      "greasy flavor indeed",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody(t, w)
	assert.EqualValues(t, 5, resp["rating"])
	assert.Equal(t, "greasy flavor indeed", resp["comment"])
}

func TestCreateReviewMenuItemOptional(t *testing.T) {
	db := setupTestDB(t)
	router := reviewRouter()
	user := createTestUser(t, db, "Alice", "alice@example.com", "0700000001")

	w := jsonRequest(t, router, http.MethodPost, "/reviews", gin.H{
		"user_id": user.ID,
		"rating":  3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&review).Error)
	assert.Nil(t, review.MenuItemID)
}

func TestCreateReviewMissingRating(t *testing.T) {
	db := setupTestDB(t)
	router := reviewRouter()
	user := createTestUser(t, db, "Alice", "alice@example.com", "0700000001")

	w := jsonRequest(t, router, http.MethodPost, "/reviews", gin.H{"user_id": user.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Documents a known defect: the rating range is not validated, so out-of-range
// values are accepted and stored as-is.
func TestCreateReviewRatingRangeUnvalidated(t *testing.T) {
	db := setupTestDB(t)
	router := reviewRouter()
	user := createTestUser(t, db, "Alice", "alice@example.com", "0700000001")

	w := jsonRequest(t, router, http.MethodPost, "/reviews", gin.H{
		"user_id": user.ID,
		"rating":  42,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&review).Error)
	assert.Equal(t, 42, review.Rating)
}

func TestListReviewsByUser(t *testing.T) {
	db := setupTestDB(t)
	router := reviewRouter()
	alice := createTestUser(t, db, "Alice", "alice@example.com", "0700000001")
	bob := createTestUser(t, db, "Bob", "bob@example.com", "0700000002")
	assert.NoError(t, db.Create(&models.Review{UserID: alice.ID, Rating: 5}).Error)
	assert.NoError(t, db.Create(&models.Review{UserID: bob.ID, Rating: 1}).Error)

	w := jsonRequest(t, router, http.MethodGet, "/reviews/user/"+itoa(alice.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
	assert.NotContains(t, w.Body.String(), "Bob")
}
