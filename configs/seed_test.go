package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlossbezerra/SuperDelivery/entity"
)

func TestSeedingIsIdempotent(t *testing.T) {
	ConnectionDB()
	SetupDatabase()
	db := DB()

	for i := 0; i < 2; i++ {
		require.NoError(t, SeedProfiles())
		require.NoError(t, SeedCatalog())
		require.NoError(t, SeedDemoData())
	}

	var users, restaurants, orders, deliveries int64
	db.Model(&entity.User{}).Count(&users)
	db.Model(&entity.Restaurant{}).Count(&restaurants)
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.Delivery{}).Count(&deliveries)

	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(6), restaurants)
	assert.Equal(t, int64(3), orders)
	assert.Equal(t, int64(3), deliveries)
}

func TestSeedWiresMerchantToRestaurant(t *testing.T) {
	ConnectionDB()
	SetupDatabase()
	db := DB()
	require.NoError(t, SeedProfiles())
	require.NoError(t, SeedCatalog())

	var merchant entity.User
	require.NoError(t, db.Where("role = ?", entity.RoleMerchant).First(&merchant).Error)

	var owned entity.Restaurant
	require.NoError(t, db.Where("owner_id = ?", merchant.ID).First(&owned).Error)
	assert.Equal(t, "Pizza Prime", owned.Name)
}
