package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fajara33/rd-company/internal/config"
	"github.com/fajara33/rd-company/internal/domain/entity"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/internal/infrastructure/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(&config.StoreConfig{
		Path: filepath.Join(t.TempDir(), "store.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	stockRepo := NewStockRepository(db)
	txRepo := NewTransactionRepository(db)
	attendanceRepo := NewAttendanceRepository(db)

	t.Run("Stock seeded with five reference items", func(t *testing.T) {
		items, err := stockRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 5)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, "Kemeja Putih", items[0].Name)
		assert.Equal(t, enum.CategoryClothing, items[0].Category)
		assert.Equal(t, int64(150000), items[0].Price)
		assert.Equal(t, 10, items[0].Quantity)
		assert.Equal(t, enum.CategoryPhoneCounter, items[3].Category)
	})

	t.Run("Ledger and attendance seeded empty", func(t *testing.T) {
		txs, err := txRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, txs)

		recs, err := attendanceRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("Seeding is idempotent", func(t *testing.T) {
		// Mutate state, then re-run the seeding path: present collections
		// must not be duplicated or reset.
		require.NoError(t, stockRepo.Create(ctx, &entity.StockItem{
			Name:     "Topi",
			Category: enum.CategoryOther,
			Price:    20000,
			Quantity: 2,
		}))

		require.NoError(t, database.Seed(db))

		items, err := stockRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 6)
	})
}

func TestStockRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns unique ids and keeps existing items intact", func(t *testing.T) {
		repo := NewStockRepository(newTestDB(t))

		before, err := repo.List(ctx)
		require.NoError(t, err)

		a := &entity.StockItem{Name: "Sarung", Category: enum.CategoryClothing, Price: 60000, Quantity: 4}
		b := &entity.StockItem{Name: "Sarung", Category: enum.CategoryClothing, Price: 60000, Quantity: 4}
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, b.ID)
		assert.NotEqual(t, a.ID, b.ID, "duplicate names are separate entries with distinct ids")

		after, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+2)
		for i, item := range before {
			assert.Equal(t, item, after[i])
		}

		seen := map[string]bool{}
		for _, item := range after {
			assert.False(t, seen[item.ID], "id %s assigned twice", item.ID)
			seen[item.ID] = true
		}
	})

	t.Run("AdjustQuantity applies delta", func(t *testing.T) {
		repo := NewStockRepository(newTestDB(t))

		require.NoError(t, repo.AdjustQuantity(ctx, "1", -3))

		item, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 7, item.Quantity)
	})

	t.Run("AdjustQuantity is a silent no-op for unknown ids", func(t *testing.T) {
		repo := NewStockRepository(newTestDB(t))

		require.NoError(t, repo.AdjustQuantity(ctx, "nope", -1))

		items, err := repo.List(ctx)
		require.NoError(t, err)
		for _, item := range items {
			assert.GreaterOrEqual(t, item.Quantity, 0)
		}
	})

	t.Run("AdjustQuantity does not clamp at zero", func(t *testing.T) {
		repo := NewStockRepository(newTestDB(t))

		require.NoError(t, repo.AdjustQuantity(ctx, "2", -7))

		item, err := repo.GetByID(ctx, "2")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, -2, item.Quantity)
	})

	t.Run("GetByID returns nil for unknown id", func(t *testing.T) {
		repo := NewStockRepository(newTestDB(t))

		item, err := repo.GetByID(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns id and timestamp and appends", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		tx := &entity.Transaction{
			Type:   enum.TransactionRetail,
			Detail: "LAYANAN: TOKO (RETAIL)",
			Total:  75000,
		}
		require.NoError(t, repo.Create(ctx, tx))

		assert.NotEmpty(t, tx.ID)
		assert.False(t, tx.Date.IsZero())

		txs, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, tx.ID, txs[0].ID)
		assert.Equal(t, int64(75000), txs[0].Total)
	})

	t.Run("TotalRevenue sums the whole ledger", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		total, err := repo.TotalRevenue(ctx)
		require.NoError(t, err)
		assert.Zero(t, total, "empty ledger sums to zero")

		for _, amount := range []int64{15000, 12000, 1320} {
			require.NoError(t, repo.Create(ctx, &entity.Transaction{
				Type:  enum.TransactionLaundry,
				Total: amount,
			}))
		}

		total, err = repo.TotalRevenue(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(28320), total)
	})
}

func TestAttendanceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestDB(t))

	rec := &entity.Attendance{Name: "Karyawan", Status: enum.AttendanceClockIn}
	require.NoError(t, repo.Create(ctx, rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Date.IsZero())

	out := &entity.Attendance{Name: "Karyawan", Status: enum.AttendanceClockOut}
	require.NoError(t, repo.Create(ctx, out))

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, enum.AttendanceClockIn, recs[0].Status)
	assert.Equal(t, enum.AttendanceClockOut, recs[1].Status)
}
