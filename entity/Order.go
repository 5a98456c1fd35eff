package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// short human-facing code, e.g. "X7K2PQ"
	Number string `json:"number" gorm:"uniqueIndex"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`

	CustomerName string `json:"customerName"`
	UserID       uint   `json:"userId"`
	User         User   `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status OrderStatus `json:"status" gorm:"type:text;default:pending"`

	Items    []OrderItem `json:"items"`
	Delivery *Delivery   `gorm:"foreignKey:OrderID" json:"-"`
	Messages []Message   `gorm:"foreignKey:OrderID" json:"-"`
}
