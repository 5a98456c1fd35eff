package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`

	// free text, e.g. "30-40 min"
	DeliveryTime string `json:"deliveryTime"`
	// cents; 0 means free delivery
	DeliveryFee int64 `json:"deliveryFee"`

	Image string   `json:"image"`
	Tags  []string `gorm:"serializer:json" json:"tags"`

	// merchant account operating this restaurant; 0 for catalog-only rows
	OwnerID uint `json:"-"`

	// pickup point handed to couriers
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	// loaded for the detail view only
	Products []Product `json:"products,omitempty"`
	Orders   []Order   `json:"-"`
}
