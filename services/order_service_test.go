package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

func newOrderTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestCreateOrderEmptyCartRollsBack(t *testing.T) {
	db, mock := newOrderTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db), nil, nil, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.New(), models.CreateOrderRequest{
		CustomerInfo: []byte(`{}`),
		DeliveryInfo: []byte(`{}`),
		PaymentInfo:  []byte(`{}`),
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "cart is empty", appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusInvalidTransitionRollsBack(t *testing.T) {
	db, mock := newOrderTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db), nil, nil, zap.NewNop())
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(orderID.String(), "delivered"))
	mock.ExpectQuery(`SELECT (.+) FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.UpdateStatus(context.Background(), orderID, models.UpdateOrderStatusRequest{
		Status: models.OrderStatusShipped,
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "cannot move order")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAppendsHistoryInSameTransaction(t *testing.T) {
	db, mock := newOrderTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db), nil, nil, zap.NewNop())
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(orderID.String(), "pending"))
	mock.ExpectQuery(`SELECT (.+) FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`UPDATE "orders"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "order_status_history"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	order, err := svc.UpdateStatus(context.Background(), orderID, models.UpdateOrderStatusRequest{
		Status: models.OrderStatusConfirmed,
		Notes:  "payment received",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// statsCaptureRepo records the window handed to Statistics; everything else
// comes from the embedded interface.
type statsCaptureRepo struct {
	repository.OrderRepository
	since time.Time
}

func (r *statsCaptureRepo) Statistics(_ context.Context, since time.Time) (*models.OrderStatistics, error) {
	r.since = since
	return &models.OrderStatistics{}, nil
}

func TestStatisticsUsesTrailing30Days(t *testing.T) {
	repo := &statsCaptureRepo{}
	svc := NewOrderService(nil, repo, nil, nil, zap.NewNop())

	_, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), repo.since, time.Minute)
}

func TestUnknownStatusRejectedBeforeTransaction(t *testing.T) {
	db, mock := newOrderTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db), nil, nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), models.UpdateOrderStatusRequest{
		Status: models.OrderStatus("teleported"),
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
