package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	Category    string `json:"category"`
	Image       string `json:"image"`

	// Stock is display-only: 0 renders as out-of-stock but does not
	// flip Available. Available is toggled by the merchant.
	Stock     int  `json:"stock"`
	Available bool `json:"available"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
