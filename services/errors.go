package services

import "errors"

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrUnknownItem     = errors.New("unknown item")
	ErrUnknownOrder    = errors.New("unknown order")
	ErrUnknownDelivery = errors.New("unknown delivery")

	// cart already locked to a different restaurant
	ErrCartConflict = errors.New("cart has another restaurant")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUnavailable  = errors.New("item not available")

	// illegal or raced status transition (first writer won)
	ErrInvalidTransition = errors.New("invalid status transition")

	// delivery claimed by another courier
	ErrDeliveryClaimed = errors.New("delivery already claimed")
	ErrCourierBusy     = errors.New("courier already has an active delivery")
	ErrCourierOffline  = errors.New("courier is offline")

	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
