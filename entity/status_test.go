package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderPending.CanTransitionTo(OrderPreparing))
	assert.True(t, OrderPending.CanTransitionTo(OrderCancelled))
	assert.True(t, OrderPreparing.CanTransitionTo(OrderReady))
	assert.True(t, OrderReady.CanTransitionTo(OrderCompleted))

	// no regressions, no skips
	assert.False(t, OrderPreparing.CanTransitionTo(OrderPending))
	assert.False(t, OrderPending.CanTransitionTo(OrderReady))
	assert.False(t, OrderPreparing.CanTransitionTo(OrderCancelled))

	// dead ends stay dead
	for _, terminal := range []OrderStatus{OrderCompleted, OrderCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled} {
			assert.False(t, terminal.CanTransitionTo(next))
		}
	}
}

func TestOrderStatusPartition(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderPreparing, OrderReady} {
		assert.True(t, s.IsActive())
		assert.False(t, s.IsTerminal())
	}
	for _, s := range []OrderStatus{OrderCompleted, OrderCancelled} {
		assert.False(t, s.IsActive())
	}
}

func TestDeliveryStatusChainIsLinear(t *testing.T) {
	assert.Equal(t, DeliveryAccepted, DeliveryAvailable.Next())
	assert.Equal(t, DeliveryPicking, DeliveryAccepted.Next())
	assert.Equal(t, DeliveryDelivering, DeliveryPicking.Next())
	assert.Equal(t, DeliveryCompleted, DeliveryDelivering.Next())
	assert.Equal(t, DeliveryStatus(""), DeliveryCompleted.Next())
}

func TestDeliveryStatusInProgress(t *testing.T) {
	assert.False(t, DeliveryAvailable.InProgress())
	assert.True(t, DeliveryAccepted.InProgress())
	assert.True(t, DeliveryPicking.InProgress())
	assert.True(t, DeliveryDelivering.InProgress())
	assert.False(t, DeliveryCompleted.InProgress())
}
