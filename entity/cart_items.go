package entity

import (
	"gorm.io/gorm"
)

// CartItem snapshots the product at the moment it was added, so later
// merchant edits do not change what the customer sees in the cart.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Name      string `json:"name"`
	Image     string `json:"image"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // cents
	Total     int64  `json:"total"`    // UnitPrice * Qty
}
