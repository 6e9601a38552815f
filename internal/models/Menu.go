package models

import "gorm.io/gorm"

// Menu is a named card (Breakfast, Drinks, ...) grouping menu items.
// Items are NOT removed when their menu goes away.
type Menu struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available" gorm:"default:true"`

	Items []MenuItem `gorm:"foreignKey:MenuID" json:"items,omitempty"`
}
