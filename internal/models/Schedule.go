package models

import "gorm.io/gorm"

// Schedule is a staff shift. Date and times are stored in their wire form
// ("2006-01-02" / "15:04"); handlers parse them for validation before writing.
type Schedule struct {
	gorm.Model
	StaffID     uint   `json:"staff_id" gorm:"not null"`
	Date        string `json:"date" gorm:"not null"`
	StartTime   string `json:"start_time" gorm:"not null"`
	EndTime     string `json:"end_time" gorm:"not null"`
	Tasks       string `json:"tasks" gorm:"not null"`
	IsCompleted bool   `json:"is_completed" gorm:"default:false"`

	Staff User `gorm:"foreignKey:StaffID" json:"-"`
}
