package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

func TestProductCreateAndList(t *testing.T) {
	e := newTestEnv(t)
	merchant := e.user(t, "loja@demo.com", "merchant")
	e.restaurant(t, "Pizza Prime", 0, merchant.ID)

	created, err := e.Product.Create(merchant.ID, &ProductIn{
		Name: "Pizza Calabresa", Price: 4590, Category: "pizza", Stock: 8,
	})
	require.NoError(t, err)
	assert.True(t, created.Available, "new products default to available")

	list, err := e.Product.List(merchant.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pizza Calabresa", list[0].Name)
}

func TestProductUpdate(t *testing.T) {
	e := newTestEnv(t)
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	p := e.product(t, rest.ID, "Pizza", 4290, true)

	off := false
	updated, err := e.Product.Update(merchant.ID, p.ID, &ProductIn{
		Name: "Pizza Margherita", Price: 4490, Stock: 5, Available: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pizza Margherita", updated.Name)
	assert.Equal(t, int64(4490), updated.Price)
	assert.False(t, updated.Available)
}

func TestToggleAvailabilityIgnoresStock(t *testing.T) {
	e := newTestEnv(t)
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	p := e.product(t, rest.ID, "Pizza", 4290, true)
	require.NoError(t, e.db.Model(&entity.Product{}).
		Where("id = ?", p.ID).Update("stock", 0).Error)

	toggled, err := e.Product.ToggleAvailability(merchant.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Available)

	// stock zero does not block turning it back on
	toggled, err = e.Product.ToggleAvailability(merchant.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Available)
}

func TestUnavailableProductStaysVisible(t *testing.T) {
	e := newTestEnv(t)
	merchant := e.user(t, "loja@demo.com", "merchant")
	customer := e.user(t, "cliente@demo.com", "customer")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	p := e.product(t, rest.ID, "Pizza", 4290, true)

	_, err := e.Product.ToggleAvailability(merchant.ID, p.ID)
	require.NoError(t, err)

	// still on the menu, just not orderable
	detail, err := e.Catalog.Detail(rest.ID)
	require.NoError(t, err)
	require.Len(t, detail.Products, 1)
	assert.False(t, detail.Products[0].Available)
	assert.ErrorIs(t, e.Cart.Add(customer.ID, p.ID), ErrUnavailable)
}

func TestProductOwnership(t *testing.T) {
	e := newTestEnv(t)
	merchant := e.user(t, "loja@demo.com", "merchant")
	rival := e.user(t, "rival@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	e.restaurant(t, "Burger House", 500, rival.ID)
	p := e.product(t, rest.ID, "Pizza", 4290, true)

	_, err := e.Product.ToggleAvailability(rival.ID, p.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, e.Product.Delete(rival.ID, p.ID), ErrUnknownItem)
}

func TestProductDeleteIsPermanent(t *testing.T) {
	e := newTestEnv(t)
	merchant := e.user(t, "loja@demo.com", "merchant")
	rest := e.restaurant(t, "Pizza Prime", 0, merchant.ID)
	p := e.product(t, rest.ID, "Pizza", 4290, true)

	require.NoError(t, e.Product.Delete(merchant.ID, p.ID))

	_, err := e.ProductsRp.Get(p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, e.Product.Delete(merchant.ID, p.ID), ErrUnknownItem)
}
