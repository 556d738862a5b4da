package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

func TestUpsertResolvesConflictAtomically(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	// A repeated add must become INSERT ... ON CONFLICT, not read-then-write.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cart_items" (.+) ON CONFLICT \("user_id","product_id","variant_id","color_id"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	err := repo.Upsert(context.Background(), &models.CartItem{
		UserID:     uuid.New(),
		ProductID:  uuid.New(),
		VariantID:  uuid.New(),
		ColorID:    uuid.New(),
		Quantity:   2,
		TotalPrice: 199.98,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetQuantityMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.SetQuantity(context.Background(), uuid.New(), uuid.New(), 3, 90)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryEmptyCart(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) as total_items`).
		WillReturnRows(sqlmock.NewRows([]string{"total_items", "total_quantity", "total_price"}).
			AddRow(0, 0, 0))

	summary, err := repo.Summary(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, summary.IsEmpty)
	assert.Zero(t, summary.TotalQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryAggregates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) as total_items`).
		WillReturnRows(sqlmock.NewRows([]string{"total_items", "total_quantity", "total_price"}).
			AddRow(2, 5, 499.95))

	summary, err := repo.Summary(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, summary.IsEmpty)
	assert.EqualValues(t, 2, summary.TotalItems)
	assert.EqualValues(t, 5, summary.TotalQuantity)
	assert.InDelta(t, 499.95, summary.TotalPrice, 0.001)
}
