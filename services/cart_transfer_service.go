package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/cache"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

// CartTransferService merges a guest cart into an authenticated user's cart
// after login or signup. The merge is best-effort and line-by-line: a line
// that fails to land stays in the guest cart instead of aborting the whole
// transfer, and the guest identity row is removed only once its cart has
// fully drained.
type CartTransferService interface {
	Transfer(ctx context.Context, sessionToken string, userID uuid.UUID) (*models.TransferResult, error)
}

type cartTransferService struct {
	cartRepo repository.CartRepository
	userRepo repository.UserRepository
	cache    cache.GuestCartCache
	logger   *zap.Logger
}

func NewCartTransferService(cartRepo repository.CartRepository, userRepo repository.UserRepository, cartCache cache.GuestCartCache, logger *zap.Logger) CartTransferService {
	return &cartTransferService{cartRepo: cartRepo, userRepo: userRepo, cache: cartCache, logger: logger}
}

func (s *cartTransferService) Transfer(ctx context.Context, sessionToken string, userID uuid.UUID) (*models.TransferResult, error) {
	guestID := DeriveGuestID(sessionToken)
	result := &models.TransferResult{GuestUserID: guestID}

	// The guest row may be missing (e.g. a previous partial transfer
	// already removed it) while lines remain; orphaned lines still merge.
	if _, err := s.userRepo.FindGuestByID(ctx, guestID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Internal("failed to look up guest", err)
		}
		s.logger.Debug("guest row absent, merging orphaned lines only",
			zap.String("guestId", guestID.String()))
	}

	items, err := s.cartRepo.FindByUser(ctx, guestID)
	if err != nil {
		return nil, apperrors.Internal("failed to load guest cart", err)
	}
	result.TotalItemsFound = len(items)

	for _, item := range items {
		merged := models.CartItem{
			UserID:      userID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ColorID:     item.ColorID,
			Quantity:    item.Quantity,
			Accessories: item.Accessories,
			TotalPrice:  item.TotalPrice,
		}
		if err := s.cartRepo.Upsert(ctx, &merged); err != nil {
			s.logger.Warn("cart line merge failed, leaving in guest cart",
				zap.String("guestId", guestID.String()),
				zap.String("itemId", item.ID.String()),
				zap.Error(err))
			continue
		}
		if _, err := s.cartRepo.Delete(ctx, guestID, item.ID); err != nil {
			s.logger.Warn("merged cart line not removed from guest cart",
				zap.String("itemId", item.ID.String()),
				zap.Error(err))
			continue
		}
		result.ItemsTransferred++
	}

	// Drop the placeholder identity only when nothing is left behind.
	if result.ItemsTransferred == result.TotalItemsFound {
		if _, err := s.userRepo.DeleteGuest(ctx, guestID); err != nil {
			s.logger.Warn("guest cleanup failed",
				zap.String("guestId", guestID.String()),
				zap.Error(err))
		}
	}

	s.cache.Invalidate(ctx, sessionToken)

	s.logger.Info("guest cart transferred",
		zap.String("guestId", guestID.String()),
		zap.String("userId", userID.String()),
		zap.Int("found", result.TotalItemsFound),
		zap.Int("transferred", result.ItemsTransferred))
	return result, nil
}
