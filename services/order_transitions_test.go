package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlossbezerra/SuperDelivery/entity"
)

func TestOrderLifecycleHappyPath(t *testing.T) {
	e := newTestEnv(t)
	customer := e.user(t, "cliente@demo.com", "customer")
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	pizza := e.product(t, rest.ID, "Pizza", 4290, true)
	order := e.placedOrder(t, customer, pizza)

	require.NoError(t, e.Order.Accept(merchant.ID, order.ID))
	got, err := e.Orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, got.Status)

	require.NoError(t, e.Order.MarkReady(merchant.ID, order.ID))
	require.NoError(t, e.Order.MarkDispatched(merchant.ID, order.ID))

	got, err = e.Orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, got.Status)
}

func TestOrderStatusNeverRegresses(t *testing.T) {
	e := newTestEnv(t)
	customer := e.user(t, "cliente@demo.com", "customer")
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	pizza := e.product(t, rest.ID, "Pizza", 4290, true)
	order := e.placedOrder(t, customer, pizza)

	require.NoError(t, e.Order.Accept(merchant.ID, order.ID))

	// a repeated accept and a late reject both land on a non-pending
	// order and fail
	assert.ErrorIs(t, e.Order.Accept(merchant.ID, order.ID), ErrInvalidTransition)
	assert.ErrorIs(t, e.Order.Reject(merchant.ID, order.ID), ErrInvalidTransition)

	// skipping preparation is not possible either
	assert.ErrorIs(t, e.Order.MarkDispatched(merchant.ID, order.ID), ErrInvalidTransition)
}

func TestRejectIsTerminal(t *testing.T) {
	e := newTestEnv(t)
	customer := e.user(t, "cliente@demo.com", "customer")
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	pizza := e.product(t, rest.ID, "Pizza", 4290, true)
	order := e.placedOrder(t, customer, pizza)

	require.NoError(t, e.Order.Reject(merchant.ID, order.ID))
	assert.ErrorIs(t, e.Order.Accept(merchant.ID, order.ID), ErrInvalidTransition)

	got, err := e.Orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, got.Status)
}

func TestMerchantCannotTouchForeignOrders(t *testing.T) {
	e := newTestEnv(t)
	customer := e.user(t, "cliente@demo.com", "customer")
	merchant := e.user(t, "loja@demo.com", "merchant")
	rival := e.user(t, "rival@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	e.restaurant(t, "Burger House", 500, rival.ID)
	pizza := e.product(t, rest.ID, "Pizza", 4290, true)
	order := e.placedOrder(t, customer, pizza)

	assert.ErrorIs(t, e.Order.Accept(rival.ID, order.ID), ErrForbidden)
	assert.ErrorIs(t, e.Order.Accept(merchant.ID, 999), ErrUnknownOrder)
}

func TestMarkReadyPublishesDeliveryJob(t *testing.T) {
	e := newTestEnv(t)
	customer := e.user(t, "cliente@demo.com", "customer")
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	pizza := e.product(t, rest.ID, "Pizza", 4290, true)
	order := e.placedOrder(t, customer, pizza)

	require.NoError(t, e.Order.Accept(merchant.ID, order.ID))
	require.NoError(t, e.Order.MarkReady(merchant.ID, order.ID))

	pool, err := e.Delivery.Pool()
	require.NoError(t, err)
	require.Len(t, pool, 1)
	job := pool[0]
	assert.Equal(t, entity.DeliveryAvailable, job.Status)
	assert.Equal(t, "Pizza Prime", job.RestaurantName)
	assert.Equal(t, rest.Address, job.PickupAddress)
	assert.Equal(t, order.Address, job.DropoffAddress)
	require.NotNil(t, job.OrderID)
	assert.Equal(t, order.ID, *job.OrderID)
	// free-delivery restaurant still pays the courier the floor
	assert.Equal(t, int64(700), job.Payment)
	assert.NotEmpty(t, job.Distance)
}

func TestActiveAndHistoryPartition(t *testing.T) {
	e := newTestEnv(t)
	customer := e.user(t, "cliente@demo.com", "customer")
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	pizza := e.product(t, rest.ID, "Pizza", 4290, true)

	kept := e.placedOrder(t, customer, pizza)
	rejected := e.placedOrder(t, customer, pizza)
	require.NoError(t, e.Order.Reject(merchant.ID, rejected.ID))

	active, err := e.Order.ListActive(merchant.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)

	history, err := e.Order.ListHistory(merchant.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, rejected.ID, history[0].ID)
}

func TestMerchantStats(t *testing.T) {
	e := newTestEnv(t)
	customer := e.user(t, "cliente@demo.com", "customer")
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	pizza := e.product(t, rest.ID, "Pizza", 4290, true)
	soda := e.product(t, rest.ID, "Refrigerante", 590, true)

	e.placedOrder(t, customer, pizza)        // 4290
	e.placedOrder(t, customer, pizza, soda)  // 4880
	cancelled := e.placedOrder(t, customer, pizza)
	require.NoError(t, e.Order.Reject(merchant.ID, cancelled.ID))

	stats, err := e.Order.Stats(merchant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.OrdersToday)
	assert.Equal(t, int64(9170), stats.Revenue)
	assert.Equal(t, int64(4585), stats.AverageTicket)
}
