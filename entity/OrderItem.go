package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // cents
	Total     int64  `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`
}
