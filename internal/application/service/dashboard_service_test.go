package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty ledger yields zeroes", func(t *testing.T) {
		_, txRepo, _ := newTestRepos(t)
		svc := NewDashboardService(txRepo, 2)

		summary, err := svc.GetSummary(ctx)
		require.NoError(t, err)

		assert.Zero(t, summary.TotalRevenue)
		assert.Empty(t, summary.RecentTransactions)
		require.Len(t, summary.RevenueByType, 3)
		for _, bucket := range summary.RevenueByType {
			assert.Zero(t, bucket.Total)
		}
		assert.Equal(t, 2, summary.RefreshIntervalSeconds)
	})

	t.Run("Aggregates revenue per transaction type", func(t *testing.T) {
		stockRepo, txRepo, _ := newTestRepos(t)
		pos := NewPOSService(stockRepo, txRepo)
		svc := NewDashboardService(txRepo, 2)

		_, err := pos.LaundryCheckout(ctx, &LaundryCheckoutInput{
			CustomerName: "Bpk. Budi",
			ServiceID:    "komplit",
			UnitPrice:    6000,
			Quantity:     2.5,
		})
		require.NoError(t, err)

		_, err = pos.RetailCheckout(ctx, "2")
		require.NoError(t, err)

		_, err = pos.KonterCheckout(ctx, "081234567890", "4")
		require.NoError(t, err)

		summary, err := svc.GetSummary(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(15000+75000+12000), summary.TotalRevenue)

		byType := map[enum.TransactionType]int64{}
		for _, bucket := range summary.RevenueByType {
			byType[bucket.Type] = bucket.Total
		}
		assert.Equal(t, int64(15000), byType[enum.TransactionLaundry])
		assert.Equal(t, int64(75000), byType[enum.TransactionRetail])
		assert.Equal(t, int64(12000), byType[enum.TransactionKonter])
	})

	t.Run("Recent list is capped at five, most recent first", func(t *testing.T) {
		stockRepo, txRepo, _ := newTestRepos(t)
		pos := NewPOSService(stockRepo, txRepo)
		svc := NewDashboardService(txRepo, 2)

		for i := 1; i <= 7; i++ {
			_, err := pos.LaundryCheckout(ctx, &LaundryCheckoutInput{
				CustomerName: fmt.Sprintf("Pelanggan %d", i),
				ServiceID:    "kering",
				UnitPrice:    5000,
				Quantity:     float64(i),
			})
			require.NoError(t, err)
		}

		summary, err := svc.GetSummary(ctx)
		require.NoError(t, err)

		require.Len(t, summary.RecentTransactions, 5)
		assert.Contains(t, summary.RecentTransactions[0].Detail, "Pelanggan 7")
		assert.Contains(t, summary.RecentTransactions[4].Detail, "Pelanggan 3")
		assert.Equal(t, int64(5000+10000+15000+20000+25000+30000+35000), summary.TotalRevenue)
	})
}
