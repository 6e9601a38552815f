package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fud_backend/internal/config"
	"fud_backend/internal/models"
)

// ISO 8601 with or without an offset, "T" or space separated. A bare date is
// fine too and means midnight.
var reservationTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseReservationTime(s string) (time.Time, error) {
	for _, layout := range reservationTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid time format")
}

// CreateReservation books a table. Missing fields are a 400, an unparseable
// timestamp is a 422, anything else is a 500.
func CreateReservation(c *gin.Context) {
	var input struct {
		UserID          uint   `json:"user_id"`
		GuestSize       int    `json:"guest_size"`
		ReservationTime string `json:"reservation_time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID == 0 || input.GuestSize == 0 || input.ReservationTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	reservationTime, err := parseReservationTime(input.ReservationTime)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid reservation_time format (use ISO 8601)"})
		return
	}

	reservation := models.Reservation{
		UserID:          input.UserID,
		GuestSize:       input.GuestSize,
		ReservationTime: reservationTime,
	}
	if err := config.DB.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               reservation.ID,
		"user_id":          reservation.UserID,
		"guest_size":       reservation.GuestSize,
		"reservation_time": reservation.ReservationTime.Format(time.RFC3339),
		"created_at":       reservation.CreatedAt.Format(time.RFC3339),
	})
}

// ListReservations lists every reservation
func ListReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := config.DB.Preload("User").Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reservations"})
		return
	}
	c.JSON(http.StatusOK, reservationResponses(reservations))
}

// ListReservationsByUser lists one user's reservations
func ListReservationsByUser(c *gin.Context) {
	userID := c.Param("id")
	var reservations []models.Reservation
	if err := config.DB.Preload("User").Where("user_id = ?", userID).Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reservations"})
		return
	}
	c.JSON(http.StatusOK, reservationResponses(reservations))
}

func reservationResponses(reservations []models.Reservation) []gin.H {
	out := make([]gin.H, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, gin.H{
			"id":               r.ID,
			"user_id":          r.UserID,
			"user_name":        r.User.Name,
			"guest_size":       r.GuestSize,
			"reservation_time": r.ReservationTime.Format(time.RFC3339),
			"created_at":       r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
