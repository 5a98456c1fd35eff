package entity

// DeliveryStatus is the courier-side lifecycle of a delivery job.
type DeliveryStatus string

const (
	DeliveryAvailable  DeliveryStatus = "available"
	DeliveryAccepted   DeliveryStatus = "accepted"
	DeliveryPicking    DeliveryStatus = "picking"
	DeliveryDelivering DeliveryStatus = "delivering"
	DeliveryCompleted  DeliveryStatus = "completed"
)

var deliveryTransitions = map[DeliveryStatus]DeliveryStatus{
	DeliveryAvailable:  DeliveryAccepted,
	DeliveryAccepted:   DeliveryPicking,
	DeliveryPicking:    DeliveryDelivering,
	DeliveryDelivering: DeliveryCompleted,
}

// Next returns the only legal successor state, or "" for the terminal
// completed state. The delivery chain is strictly linear.
func (s DeliveryStatus) Next() DeliveryStatus {
	return deliveryTransitions[s]
}

// InProgress reports whether a courier currently holds this delivery.
func (s DeliveryStatus) InProgress() bool {
	return s == DeliveryAccepted || s == DeliveryPicking || s == DeliveryDelivering
}
