package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name string `json:"name"`
	// Uniqueness only applies to live rows, so a deleted user's email and
	// phone number can be registered again.
	Email       string `json:"email" gorm:"index:uniq_users_email,unique,where:deleted_at IS NULL"`
	PhoneNumber string `json:"phone_number" gorm:"index:uniq_users_phone_number,unique,where:deleted_at IS NULL"`
	Password       string `json:"-"`
	ProfilePicture string `json:"profile_picture"`
	Role           string `json:"role" gorm:"default:customer"` // "customer", "staff", "admin"

	// Owned rows. Orders, reservations and reviews are cleaned up by hand when the
	// user is deleted; schedules intentionally survive their staff member.
	Orders       []Order       `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:UserID" json:"reservations,omitempty"`
	Reviews      []Review      `gorm:"foreignKey:UserID" json:"reviews,omitempty"`
}
