package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

func TestUpdateStatusMissingOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), uuid.New(), models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

	count, err := repo.CountSince(context.Background(), time.Now().Truncate(24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 41, count)
}

func TestStatisticsAppliesSinceFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	since := time.Now().AddDate(0, 0, -30)

	mock.ExpectQuery(`(?s)SELECT COUNT\(\*\) as total_orders.+WHERE created_at >=`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"total_orders", "total_revenue"}).
			AddRow(3, 900.00))

	stats, err := repo.Statistics(context.Background(), since)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsScan(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) as total_orders`).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_orders", "pending_orders", "confirmed_orders",
			"shipped_orders", "delivered_orders", "cancelled_orders", "total_revenue",
		}).AddRow(10, 2, 3, 1, 3, 1, 12345.67))

	stats, err := repo.Statistics(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.EqualValues(t, 10, stats.TotalOrders)
	assert.EqualValues(t, 3, stats.DeliveredOrders)
	assert.InDelta(t, 12345.67, stats.TotalRevenue, 0.001)
}
