package service

import (
	"context"
	"testing"

	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_ListStock(t *testing.T) {
	ctx := context.Background()
	stockRepo, _, _ := newTestRepos(t)
	svc := NewInventoryService(stockRepo)

	t.Run("No search returns everything", func(t *testing.T) {
		items, err := svc.ListStock(ctx, "")
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("Matches item names case-insensitively", func(t *testing.T) {
		items, err := svc.ListStock(ctx, "kemeja")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Kemeja Putih", items[0].Name)
	})

	t.Run("Matches categories too", func(t *testing.T) {
		items, err := svc.ListStock(ctx, "konter")
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.Equal(t, enum.CategoryPhoneCounter, item.Category)
		}
	})

	t.Run("No match yields an empty list", func(t *testing.T) {
		items, err := svc.ListStock(ctx, "sepeda")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestInventoryService_AddStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates the item and assigns an id", func(t *testing.T) {
		stockRepo, _, _ := newTestRepos(t)
		svc := NewInventoryService(stockRepo)

		item, err := svc.AddStock(ctx, &AddStockInput{
			Name:     "  Gelang Perak  ",
			Category: enum.CategoryAccessories,
			Price:    45000,
			Quantity: 8,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "Gelang Perak", item.Name, "name is trimmed")

		stored, err := stockRepo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 8, stored.Quantity)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		stockRepo, _, _ := newTestRepos(t)
		svc := NewInventoryService(stockRepo)

		tests := []struct {
			name  string
			input AddStockInput
		}{
			{"blank name", AddStockInput{Name: "   ", Category: enum.CategoryClothing, Price: 1000, Quantity: 1}},
			{"unknown category", AddStockInput{Name: "Barang", Category: enum.Category("Sepatu"), Price: 1000, Quantity: 1}},
			{"negative price", AddStockInput{Name: "Barang", Category: enum.CategoryClothing, Price: -1, Quantity: 1}},
			{"negative quantity", AddStockInput{Name: "Barang", Category: enum.CategoryClothing, Price: 1000, Quantity: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.AddStock(ctx, &tt.input)
				require.Error(t, err)
				assert.Equal(t, 400, apperror.GetAppError(err).Code)
			})
		}

		items, err := svc.ListStock(ctx, "")
		require.NoError(t, err)
		assert.Len(t, items, 5, "failed adds leave the inventory untouched")
	})

	t.Run("Allows duplicate names as separate entries", func(t *testing.T) {
		stockRepo, _, _ := newTestRepos(t)
		svc := NewInventoryService(stockRepo)

		first, err := svc.AddStock(ctx, &AddStockInput{Name: "Pulsa 20k", Category: enum.CategoryPhoneCounter, Price: 22000, Quantity: 10})
		require.NoError(t, err)
		second, err := svc.AddStock(ctx, &AddStockInput{Name: "Pulsa 20k", Category: enum.CategoryPhoneCounter, Price: 22000, Quantity: 10})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestInventoryService_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies the delta and returns the updated item", func(t *testing.T) {
		stockRepo, _, _ := newTestRepos(t)
		svc := NewInventoryService(stockRepo)

		item, err := svc.AdjustStock(ctx, "1", 5)
		require.NoError(t, err)
		assert.Equal(t, 15, item.Quantity)

		item, err = svc.AdjustStock(ctx, "1", -20)
		require.NoError(t, err)
		assert.Equal(t, -5, item.Quantity, "manual adjustments are not clamped at zero")
	})

	t.Run("Unknown id is not found", func(t *testing.T) {
		stockRepo, _, _ := newTestRepos(t)
		svc := NewInventoryService(stockRepo)

		_, err := svc.AdjustStock(ctx, "missing", 1)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}
