package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fud_backend/internal/config"
	"fud_backend/internal/models"
)

const (
	scheduleDateLayout = "2006-01-02"
	scheduleTimeLayout = "15:04"
)

// ListSchedules lists every staff shift
func ListSchedules(c *gin.Context) {
	var schedules []models.Schedule
	if err := config.DB.Preload("Staff").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedules"})
		return
	}

	out := make([]gin.H, 0, len(schedules))
	for i := range schedules {
		out = append(out, scheduleResponse(&schedules[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateSchedule adds a staff shift. Date must be YYYY-MM-DD and both times
// HH:MM; a missing key or parse failure is reported with the underlying message.
func CreateSchedule(c *gin.Context) {
	var input struct {
		StaffID     uint   `json:"staff_id"`
		Date        string `json:"date"`
		StartTime   string `json:"start_time"`
		EndTime     string `json:"end_time"`
		Tasks       string `json:"tasks"`
		IsCompleted bool   `json:"is_completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.StaffID == 0 || input.Date == "" || input.StartTime == "" || input.EndTime == "" || input.Tasks == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staff_id, date, start_time, end_time and tasks are required"})
		return
	}

	if _, err := time.Parse(scheduleDateLayout, input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse(scheduleTimeLayout, input.StartTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse(scheduleTimeLayout, input.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule := models.Schedule{
		StaffID:     input.StaffID,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Tasks:       input.Tasks,
		IsCompleted: input.IsCompleted,
	}
	if err := config.DB.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, scheduleResponse(&schedule))
}

// UpdateSchedule applies a partial update: only fields present in the body
// change, everything else keeps its current value.
func UpdateSchedule(c *gin.Context) {
	id := c.Param("id")
	var schedule models.Schedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	var input struct {
		StaffID     *uint   `json:"staff_id"`
		Date        *string `json:"date"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		Tasks       *string `json:"tasks"`
		IsCompleted *bool   `json:"is_completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.StaffID != nil {
		schedule.StaffID = *input.StaffID
	}
	if input.Date != nil {
		if _, err := time.Parse(scheduleDateLayout, *input.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		schedule.Date = *input.Date
	}
	if input.StartTime != nil {
		if _, err := time.Parse(scheduleTimeLayout, *input.StartTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		schedule.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		if _, err := time.Parse(scheduleTimeLayout, *input.EndTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		schedule.EndTime = *input.EndTime
	}
	if input.Tasks != nil {
		schedule.Tasks = *input.Tasks
	}
	if input.IsCompleted != nil {
		schedule.IsCompleted = *input.IsCompleted
	}

	if err := config.DB.Save(&schedule).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scheduleResponse(&schedule))
}

// DeleteSchedule removes a shift by ID
func DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	var schedule models.Schedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	if err := config.DB.Delete(&schedule).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

func scheduleResponse(s *models.Schedule) gin.H {
	var staffName interface{}
	if s.Staff.ID != 0 {
		staffName = s.Staff.Name
	}
	return gin.H{
		"id":           s.ID,
		"staff_id":     s.StaffID,
		"staff_name":   staffName,
		"date":         s.Date,
		"start_time":   s.StartTime,
		"end_time":     s.EndTime,
		"tasks":        s.Tasks,
		"is_completed": s.IsCompleted,
		"created_at":   s.CreatedAt.Format(time.RFC3339),
		"updated_at":   s.UpdatedAt.Format(time.RFC3339),
	}
}
