package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null"`
	// Nil for reviews about the restaurant rather than a specific dish.
	MenuItemID *uint  `json:"menu_item_id"`
	Rating     int    `json:"rating" gorm:"not null"`
	Comment    string `json:"comment"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
