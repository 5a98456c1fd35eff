package entity

import (
	"gorm.io/gorm"
)

// Message is one entry in the append-only per-order chat log.
type Message struct {
	gorm.Model
	Body string `json:"body"`

	// customer | merchant | courier
	SenderRole string `json:"sender"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
