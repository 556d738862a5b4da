package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

func transferFixtures(session string, lines int) (uuid.UUID, []models.CartItem) {
	guestID := DeriveGuestID(session)
	items := make([]models.CartItem, 0, lines)
	for i := 0; i < lines; i++ {
		items = append(items, models.CartItem{
			ID:         uuid.New(),
			UserID:     guestID,
			ProductID:  uuid.New(),
			VariantID:  uuid.New(),
			ColorID:    uuid.New(),
			Quantity:   i + 1,
			TotalPrice: float64((i + 1) * 100),
		})
	}
	return guestID, items
}

func TestTransferMergesAllLines(t *testing.T) {
	session := "guest-session-1"
	guestID, items := transferFixtures(session, 3)
	userID := uuid.New()

	var upserted []models.CartItem
	var deletedLines []uuid.UUID
	guestDeleted := false

	cartRepo := &mockCartRepo{
		findByUser: func(_ context.Context, id uuid.UUID) ([]models.CartItem, error) {
			require.Equal(t, guestID, id)
			return items, nil
		},
		upsert: func(_ context.Context, item *models.CartItem) error {
			upserted = append(upserted, *item)
			return nil
		},
		delete: func(_ context.Context, _, itemID uuid.UUID) (int64, error) {
			deletedLines = append(deletedLines, itemID)
			return 1, nil
		},
	}
	userRepo := &mockUserRepo{
		findGuestByID: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleGuest}, nil
		},
		deleteGuest: func(_ context.Context, id uuid.UUID) (int64, error) {
			guestDeleted = true
			return 1, nil
		},
	}
	cartCache := &mockCache{}

	svc := NewCartTransferService(cartRepo, userRepo, cartCache, zap.NewNop())
	result, err := svc.Transfer(context.Background(), session, userID)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalItemsFound)
	assert.Equal(t, 3, result.ItemsTransferred)
	assert.Equal(t, guestID, result.GuestUserID)
	assert.Len(t, deletedLines, 3)
	assert.True(t, guestDeleted, "drained guest identity must be removed")
	assert.Contains(t, cartCache.invalidated, session)
	for _, item := range upserted {
		assert.Equal(t, userID, item.UserID, "merged lines must belong to the destination user")
	}
}

func TestTransferPartialFailureKeepsGuest(t *testing.T) {
	session := "guest-session-2"
	_, items := transferFixtures(session, 3)
	failing := items[1].ProductID

	guestDeleted := false
	cartRepo := &mockCartRepo{
		findByUser: func(_ context.Context, _ uuid.UUID) ([]models.CartItem, error) {
			return items, nil
		},
		upsert: func(_ context.Context, item *models.CartItem) error {
			if item.ProductID == failing {
				return errors.New("constraint violation")
			}
			return nil
		},
		delete: func(_ context.Context, _, _ uuid.UUID) (int64, error) { return 1, nil },
	}
	userRepo := &mockUserRepo{
		findGuestByID: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleGuest}, nil
		},
		deleteGuest: func(_ context.Context, _ uuid.UUID) (int64, error) {
			guestDeleted = true
			return 1, nil
		},
	}

	svc := NewCartTransferService(cartRepo, userRepo, &mockCache{}, zap.NewNop())
	result, err := svc.Transfer(context.Background(), session, uuid.New())
	require.NoError(t, err, "a failed line must not abort the transfer")

	assert.Equal(t, 3, result.TotalItemsFound)
	assert.Equal(t, 2, result.ItemsTransferred)
	assert.False(t, guestDeleted, "guest identity must survive while lines remain")
}

func TestTransferOrphanedLinesWithoutGuestRow(t *testing.T) {
	session := "guest-session-3"
	_, items := transferFixtures(session, 1)

	cartRepo := &mockCartRepo{
		findByUser: func(_ context.Context, _ uuid.UUID) ([]models.CartItem, error) {
			return items, nil
		},
		upsert: func(_ context.Context, _ *models.CartItem) error { return nil },
		delete: func(_ context.Context, _, _ uuid.UUID) (int64, error) { return 1, nil },
	}
	userRepo := &mockUserRepo{
		findGuestByID: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		deleteGuest: func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
	}

	svc := NewCartTransferService(cartRepo, userRepo, &mockCache{}, zap.NewNop())
	result, err := svc.Transfer(context.Background(), session, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsTransferred)
}

func TestTransferEmptyGuestCart(t *testing.T) {
	cartRepo := &mockCartRepo{
		findByUser: func(_ context.Context, _ uuid.UUID) ([]models.CartItem, error) {
			return nil, nil
		},
	}
	userRepo := &mockUserRepo{
		findGuestByID: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		deleteGuest: func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
	}

	svc := NewCartTransferService(cartRepo, userRepo, &mockCache{}, zap.NewNop())
	result, err := svc.Transfer(context.Background(), "empty-session", uuid.New())
	require.NoError(t, err)
	assert.Zero(t, result.TotalItemsFound)
	assert.Zero(t, result.ItemsTransferred)
}
