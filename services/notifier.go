package services

// EventKind mirrors the notification kinds the dashboards know about.
type EventKind string

const (
	EventNewOrder         EventKind = "new_order"
	EventOrderAccepted    EventKind = "order_accepted"
	EventOrderReady       EventKind = "order_ready"
	EventDeliveryAssigned EventKind = "delivery_assigned"
	EventOutForDelivery   EventKind = "out_for_delivery"
	EventDelivered        EventKind = "delivered"
	EventOrderCancelled   EventKind = "order_cancelled"
)

// Event is a fire-and-forget notification record. Nothing in the core
// ever reads one back; dropping or replaying events is harmless.
type Event struct {
	Kind    EventKind `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	OrderID string    `json:"orderId,omitempty"`
}

// Notifier is the outbound side channel the services publish to. An
// implementation must never block the caller.
type Notifier interface {
	Publish(Event)
}

// NopNotifier discards events; used in tests and as a safe default.
type NopNotifier struct{}

func (NopNotifier) Publish(Event) {}
