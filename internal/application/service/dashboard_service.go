package service

import (
	"context"

	"github.com/fajara33/rd-company/internal/domain/entity"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/internal/domain/repository"
)

// recentTransactionCount is how many ledger entries the dashboard shows,
// most-recent-first.
const recentTransactionCount = 5

// DashboardService derives read-only summaries from the transaction ledger.
type DashboardService struct {
	txRepo                 repository.TransactionRepository
	refreshIntervalSeconds int
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(txRepo repository.TransactionRepository, refreshIntervalSeconds int) *DashboardService {
	return &DashboardService{
		txRepo:                 txRepo,
		refreshIntervalSeconds: refreshIntervalSeconds,
	}
}

// DashboardSummary represents the dashboard view data
type DashboardSummary struct {
	TotalRevenue       int64                `json:"total_revenue"`
	RecentTransactions []entity.Transaction `json:"recent_transactions"`
	RevenueByType      []RevenueBucket      `json:"revenue_by_type"`
	// RefreshIntervalSeconds tells clients how often to re-poll: the store
	// has no change notifications, so the polling interval is part of the
	// dashboard contract.
	RefreshIntervalSeconds int `json:"refresh_interval_seconds"`
}

// RevenueBucket is the per-type revenue aggregate for the dashboard chart.
type RevenueBucket struct {
	Type  enum.TransactionType `json:"type"`
	Total int64                `json:"total"`
}

// GetSummary recomputes the dashboard summary from the full ledger. The
// revenue-by-type chart carries laundry, retail and konter as separate
// buckets.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var totalRevenue int64
	byType := map[enum.TransactionType]int64{}
	for _, tx := range txs {
		totalRevenue += tx.Total
		byType[tx.Type] += tx.Total
	}

	recent := []entity.Transaction{}
	for i := len(txs) - 1; i >= 0 && len(recent) < recentTransactionCount; i-- {
		recent = append(recent, txs[i])
	}

	return &DashboardSummary{
		TotalRevenue:       totalRevenue,
		RecentTransactions: recent,
		RevenueByType: []RevenueBucket{
			{Type: enum.TransactionLaundry, Total: byType[enum.TransactionLaundry]},
			{Type: enum.TransactionRetail, Total: byType[enum.TransactionRetail]},
			{Type: enum.TransactionKonter, Total: byType[enum.TransactionKonter]},
		},
		RefreshIntervalSeconds: s.refreshIntervalSeconds,
	}, nil
}
