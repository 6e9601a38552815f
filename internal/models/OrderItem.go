package models

import "gorm.io/gorm"

type OrderItem struct {
	gorm.Model
	OrderID    uint `json:"order_id" gorm:"not null"`
	MenuItemID uint `json:"menu_item_id" gorm:"not null"`
	Quantity   int  `json:"quantity" gorm:"not null;default:1"`
	// Price is copied from the menu item when the order is placed so later menu
	// price changes never rewrite order history.
	Price float64 `json:"price" gorm:"not null"`
}
