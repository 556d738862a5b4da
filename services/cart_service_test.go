package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
)

func TestSetQuantityRescalesTotal(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	var gotQuantity int
	var gotTotal float64
	repo := &mockCartRepo{
		findByID: func(_ context.Context, _, _ uuid.UUID) (*models.CartItem, error) {
			return &models.CartItem{ID: itemID, UserID: userID, Quantity: 2, TotalPrice: 50}, nil
		},
		setQuantity: func(_ context.Context, _, _ uuid.UUID, quantity int, totalPrice float64) error {
			gotQuantity = quantity
			gotTotal = totalPrice
			return nil
		},
	}
	svc := NewCartService(repo, zap.NewNop())

	item, err := svc.SetQuantity(context.Background(), userID, itemID, 5)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 5, gotQuantity)
	assert.InDelta(t, 125.0, gotTotal, 0.001, "unit price of 25 must be preserved")
	assert.InDelta(t, 125.0, item.TotalPrice, 0.001)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	deleted := false
	repo := &mockCartRepo{
		delete: func(_ context.Context, _, _ uuid.UUID) (int64, error) {
			deleted = true
			return 1, nil
		},
	}
	svc := NewCartService(repo, zap.NewNop())

	item, err := svc.SetQuantity(context.Background(), uuid.New(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.True(t, deleted)
}

func TestDecrementToZeroRemovesLine(t *testing.T) {
	deleted := false
	repo := &mockCartRepo{
		findByID: func(_ context.Context, _, _ uuid.UUID) (*models.CartItem, error) {
			return &models.CartItem{Quantity: 1, TotalPrice: 30}, nil
		},
		delete: func(_ context.Context, _, _ uuid.UUID) (int64, error) {
			deleted = true
			return 1, nil
		},
	}
	svc := NewCartService(repo, zap.NewNop())

	item, err := svc.Decrement(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.True(t, deleted)
}

func TestSetQuantityMissingLine(t *testing.T) {
	repo := &mockCartRepo{
		findByID: func(_ context.Context, _, _ uuid.UUID) (*models.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewCartService(repo, zap.NewNop())

	_, err := svc.SetQuantity(context.Background(), uuid.New(), uuid.New(), 3)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestRemoveMissingLine(t *testing.T) {
	repo := &mockCartRepo{
		delete: func(_ context.Context, _, _ uuid.UUID) (int64, error) { return 0, nil },
	}
	svc := NewCartService(repo, zap.NewNop())

	err := svc.Remove(context.Background(), uuid.New(), uuid.New())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}
