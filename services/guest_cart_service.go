package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/cache"
	"github.com/avpratap/riqueza-backend/models"
)

// GuestCartService is the session-token front of CartService: it derives the
// guest's stable user ID from the token, materialises the placeholder user on
// first write, and keeps the Redis view cache coherent around mutations.
type GuestCartService interface {
	Get(ctx context.Context, sessionToken string) (*models.CartView, error)
	Add(ctx context.Context, sessionToken string, req models.AddCartItemRequest) (*models.CartItem, error)
	SetQuantity(ctx context.Context, sessionToken string, itemID uuid.UUID, quantity int) (*models.CartItem, error)
	Increment(ctx context.Context, sessionToken string, itemID uuid.UUID) (*models.CartItem, error)
	Decrement(ctx context.Context, sessionToken string, itemID uuid.UUID) (*models.CartItem, error)
	Remove(ctx context.Context, sessionToken string, itemID uuid.UUID) error
	Clear(ctx context.Context, sessionToken string) error
	Summary(ctx context.Context, sessionToken string) (*models.CartSummary, error)
}

type guestCartService struct {
	carts    CartService
	identity GuestIdentityService
	cache    cache.GuestCartCache
	logger   *zap.Logger
}

func NewGuestCartService(carts CartService, identity GuestIdentityService, cartCache cache.GuestCartCache, logger *zap.Logger) GuestCartService {
	return &guestCartService{carts: carts, identity: identity, cache: cartCache, logger: logger}
}

// Get reads through the cache. Reads never create the guest row; an unknown
// session simply owns an empty cart.
func (s *guestCartService) Get(ctx context.Context, sessionToken string) (*models.CartView, error) {
	if view, ok := s.cache.Get(ctx, sessionToken); ok {
		return view, nil
	}
	view, err := s.carts.Get(ctx, s.identity.Resolve(sessionToken))
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, sessionToken, view)
	return view, nil
}

func (s *guestCartService) Add(ctx context.Context, sessionToken string, req models.AddCartItemRequest) (*models.CartItem, error) {
	guest, err := s.identity.Ensure(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	item, err := s.carts.Add(ctx, guest.ID, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionToken)
	return item, nil
}

func (s *guestCartService) SetQuantity(ctx context.Context, sessionToken string, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	item, err := s.carts.SetQuantity(ctx, s.identity.Resolve(sessionToken), itemID, quantity)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionToken)
	return item, nil
}

func (s *guestCartService) Increment(ctx context.Context, sessionToken string, itemID uuid.UUID) (*models.CartItem, error) {
	item, err := s.carts.Increment(ctx, s.identity.Resolve(sessionToken), itemID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionToken)
	return item, nil
}

func (s *guestCartService) Decrement(ctx context.Context, sessionToken string, itemID uuid.UUID) (*models.CartItem, error) {
	item, err := s.carts.Decrement(ctx, s.identity.Resolve(sessionToken), itemID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionToken)
	return item, nil
}

func (s *guestCartService) Remove(ctx context.Context, sessionToken string, itemID uuid.UUID) error {
	if err := s.carts.Remove(ctx, s.identity.Resolve(sessionToken), itemID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, sessionToken)
	return nil
}

func (s *guestCartService) Clear(ctx context.Context, sessionToken string) error {
	if err := s.carts.Clear(ctx, s.identity.Resolve(sessionToken)); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, sessionToken)
	return nil
}

func (s *guestCartService) Summary(ctx context.Context, sessionToken string) (*models.CartSummary, error) {
	return s.carts.Summary(ctx, s.identity.Resolve(sessionToken))
}
