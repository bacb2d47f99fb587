package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemManagement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.catalog.AddMenuItem(ctx, MenuItemParams{
		ProviderID: "provider1",
		Name:       "Jeera Rice",
		Category:   "Main Course",
		Price:      90,
		Type:       "Veg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	assert.Len(t, env.store.MenuItems(), 11)

	t.Run("update", func(t *testing.T) {
		updated, err := env.catalog.UpdateMenuItem(ctx, item.ID, MenuItemParams{
			Name:     "Jeera Rice",
			Category: "Main Course",
			Price:    110,
			Type:     "Veg",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(110), updated.Price)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, env.catalog.RemoveMenuItem(ctx, item.ID))
		assert.Len(t, env.store.MenuItems(), 10)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := env.catalog.AddMenuItem(ctx, MenuItemParams{ProviderID: "nope", Name: "X"})
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := env.catalog.UpdateMenuItem(ctx, "nope", MenuItemParams{})
		assert.ErrorIs(t, err, ErrMenuItemNotFound)
		assert.ErrorIs(t, env.catalog.RemoveMenuItem(ctx, "nope"), ErrMenuItemNotFound)
	})
}

func TestPackageManagement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pkg, err := env.catalog.AddPackage(ctx, PackageParams{
		ProviderID:    "provider1",
		Name:          "Engagement Package",
		ItemIDs:       []string{"item1", "item3"},
		PricePerPlate: 300,
		Description:   "Light menu for engagements",
	})
	require.NoError(t, err)
	assert.Len(t, env.store.Packages(), 4)

	t.Run("rejects foreign items", func(t *testing.T) {
		// item5 belongs to provider2.
		_, err := env.catalog.AddPackage(ctx, PackageParams{
			ProviderID: "provider1",
			Name:       "Bad Package",
			ItemIDs:    []string{"item1", "item5"},
		})
		assert.ErrorIs(t, err, ErrForeignMenuItem)
	})

	t.Run("rejects unknown items", func(t *testing.T) {
		_, err := env.catalog.AddPackage(ctx, PackageParams{
			ProviderID: "provider1",
			Name:       "Bad Package",
			ItemIDs:    []string{"item-gone"},
		})
		assert.ErrorIs(t, err, ErrMenuItemNotFound)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := env.catalog.UpdatePackage(ctx, pkg.ID, PackageParams{
			Name:          "Engagement Deluxe",
			ItemIDs:       []string{"item1", "item2", "item3"},
			PricePerPlate: 330,
		})
		require.NoError(t, err)
		assert.Equal(t, "Engagement Deluxe", updated.Name)
		assert.Len(t, updated.ItemIDs, 3)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, env.catalog.RemovePackage(ctx, pkg.ID))
		assert.Len(t, env.store.Packages(), 3)
		assert.ErrorIs(t, env.catalog.RemovePackage(ctx, pkg.ID), ErrPackageNotFound)
	})
}

func TestCatalogQueries(t *testing.T) {
	env := newTestEnv(t)

	assert.Len(t, env.catalog.MenuFor("provider1"), 4)
	assert.Len(t, env.catalog.MenuFor("provider2"), 3)
	assert.Len(t, env.catalog.PackagesFor("provider3"), 1)
	assert.Empty(t, env.catalog.MenuFor("nope"))
}
