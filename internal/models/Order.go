package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null"`
	// Denormalized convenience field. The authoritative total is TotalAmount();
	// serialization must never trust this column.
	Total float64 `json:"total"`

	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TotalAmount recomputes the order total from its line items.
func (o *Order) TotalAmount() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
