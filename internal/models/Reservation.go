package models

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"not null"`
	ReservationTime time.Time `json:"reservation_time"`
	GuestSize       int       `json:"guest_size" gorm:"not null"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
