package entity

import (
	"time"

	"gorm.io/gorm"
)

// Delivery is one job in the courier pool. While status is available it
// is visible to every courier; once claimed it belongs to exactly one.
type Delivery struct {
	gorm.Model
	RestaurantName string `json:"restaurant"`
	CustomerName   string `json:"customer"`
	PickupAddress  string `json:"pickup"`
	DropoffAddress string `json:"delivery"`

	// free text, e.g. "2.3 km"
	Distance string `json:"distance"`
	// courier payout, cents
	Payment int64 `json:"payment"`

	PickupLat  float64 `json:"pickupLat"`
	PickupLng  float64 `json:"pickupLng"`
	DropoffLat float64 `json:"dropoffLat"`
	DropoffLng float64 `json:"dropoffLng"`

	Status DeliveryStatus `json:"status" gorm:"type:text;default:available"`

	// the courier holding the job; nil while available
	CourierID *uint `json:"courierId,omitempty"`
	Courier   *User `json:"-"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`

	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
