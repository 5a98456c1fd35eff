package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListFiltersByCategory(t *testing.T) {
	e := newTestEnv(t)
	e.restaurant(t, "Pizza Prime", 0, 0)
	sushi := e.restaurant(t, "Sushi Koi", 890, 0)
	require.NoError(t, e.db.Model(sushi).Update("category", "japonesa").Error)

	all, err := e.Catalog.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	all, err = e.Catalog.List("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	japanese, err := e.Catalog.List("japonesa")
	require.NoError(t, err)
	require.Len(t, japanese, 1)
	assert.Equal(t, "Sushi Koi", japanese[0].Name)
}

func TestCatalogDetailIncludesMenu(t *testing.T) {
	e := newTestEnv(t)
	rest := e.restaurant(t, "Pizza Prime", 0, 0)
	e.product(t, rest.ID, "Pizza Margherita", 4290, true)
	e.product(t, rest.ID, "Refrigerante Lata", 590, true)

	detail, err := e.Catalog.Detail(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Prime", detail.Name)
	assert.Len(t, detail.Products, 2)

	_, err = e.Catalog.Detail(999)
	assert.ErrorIs(t, err, ErrUnknownItem)
}
