package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
	RoleCourier  = "courier"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// courier availability toggle; unused for other roles
	Online bool `json:"online"`

	Orders       []Order    `json:"-"`
	MessagesSent []Message  `gorm:"foreignKey:UserID" json:"-"`
	Deliveries   []Delivery `gorm:"foreignKey:CourierID" json:"-"`
}
