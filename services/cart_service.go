package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

// CartService owns cart-line semantics for any owner, real or guest. Quantity
// edits rescale the stored line total proportionally so the unit price a line
// was added at is preserved.
type CartService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.CartView, error)
	Add(ctx context.Context, userID uuid.UUID, req models.AddCartItemRequest) (*models.CartItem, error)
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartItem, error)
	Increment(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error)
	Decrement(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*models.CartSummary, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	logger   *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, logger *zap.Logger) CartService {
	return &cartService{cartRepo: cartRepo, logger: logger}
}

func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*models.CartView, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load cart", err)
	}
	summary, err := s.cartRepo.Summary(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to summarise cart", err)
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return &models.CartView{Items: items, Summary: *summary}, nil
}

func (s *cartService) Add(ctx context.Context, userID uuid.UUID, req models.AddCartItemRequest) (*models.CartItem, error) {
	item := &models.CartItem{
		UserID:      userID,
		ProductID:   req.ProductID,
		VariantID:   req.VariantID,
		ColorID:     req.ColorID,
		Quantity:    req.Quantity,
		Accessories: req.Accessories,
		TotalPrice:  req.TotalPrice,
	}
	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		return nil, apperrors.Internal("failed to add cart item", err)
	}
	s.logger.Debug("cart item upserted",
		zap.String("userId", userID.String()),
		zap.String("productId", req.ProductID.String()),
		zap.Int("quantity", req.Quantity))
	return item, nil
}

func (s *cartService) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		if err := s.Remove(ctx, userID, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.cartRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart item not found")
		}
		return nil, apperrors.Internal("failed to load cart item", err)
	}

	newTotal := item.UnitPrice() * float64(quantity)
	if err := s.cartRepo.SetQuantity(ctx, userID, itemID, quantity, newTotal); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart item not found")
		}
		return nil, apperrors.Internal("failed to update quantity", err)
	}
	item.Quantity = quantity
	item.TotalPrice = newTotal
	return item, nil
}

func (s *cartService) Increment(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	return s.adjust(ctx, userID, itemID, +1)
}

func (s *cartService) Decrement(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	return s.adjust(ctx, userID, itemID, -1)
}

func (s *cartService) adjust(ctx context.Context, userID, itemID uuid.UUID, delta int) (*models.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart item not found")
		}
		return nil, apperrors.Internal("failed to load cart item", err)
	}
	return s.SetQuantity(ctx, userID, itemID, item.Quantity+delta)
}

func (s *cartService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	rows, err := s.cartRepo.Delete(ctx, userID, itemID)
	if err != nil {
		return apperrors.Internal("failed to remove cart item", err)
	}
	if rows == 0 {
		return apperrors.NotFound("cart item not found")
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return apperrors.Internal("failed to clear cart", err)
	}
	return nil
}

func (s *cartService) Summary(ctx context.Context, userID uuid.UUID) (*models.CartSummary, error) {
	summary, err := s.cartRepo.Summary(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to summarise cart", err)
	}
	return summary, nil
}
