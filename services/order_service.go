package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/cache"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

// OrderService turns carts into immutable order snapshots and walks orders
// through the status machine. Creation is a single transaction: number
// allocation, header, lines, the opening history row and the cart clear all
// commit or roll back together.
type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, req models.CreateOrderRequest) (*models.Order, error)
	CreateForGuest(ctx context.Context, sessionToken string, req models.CreateOrderRequest) (*models.Order, error)
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	GetByNumber(ctx context.Context, userID uuid.UUID, orderNumber string) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error)
	ListAll(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error)
	History(ctx context.Context, userID, orderID uuid.UUID) ([]models.OrderStatusHistory, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req models.UpdateOrderStatusRequest) (*models.Order, error)
	Cancel(ctx context.Context, userID, orderID uuid.UUID, reason string) (*models.Order, error)
	Statistics(ctx context.Context) (*models.OrderStatistics, error)
}

type orderService struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
	identity  GuestIdentityService
	cache     cache.GuestCartCache
	logger    *zap.Logger
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, identity GuestIdentityService, cartCache cache.GuestCartCache, logger *zap.Logger) OrderService {
	return &orderService{db: db, orderRepo: orderRepo, identity: identity, cache: cartCache, logger: logger}
}

func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req models.CreateOrderRequest) (*models.Order, error) {
	var created *models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := repository.NewCartRepository(tx)
		orderRepo := repository.NewOrderRepository(tx)

		items, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			return apperrors.Internal("failed to load cart", err)
		}
		if len(items) == 0 {
			return apperrors.Validation("cart is empty")
		}

		var subtotal float64
		for _, item := range items {
			subtotal += item.TotalPrice
		}

		number, err := nextOrderNumber(ctx, orderRepo)
		if err != nil {
			return apperrors.Internal("failed to allocate order number", err)
		}

		order := &models.Order{
			OrderNumber:  number,
			UserID:       userID,
			Status:       models.OrderStatusPending,
			CustomerInfo: req.CustomerInfo,
			DeliveryInfo: req.DeliveryInfo,
			PaymentInfo:  req.PaymentInfo,
			OrderNotes:   req.OrderNotes,
			TotalAmount:  subtotal,
			DeliveryFee:  req.DeliveryFee,
			FinalAmount:  subtotal + req.DeliveryFee,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return apperrors.Internal("failed to create order", err)
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				VariantID:   item.VariantID,
				ColorID:     item.ColorID,
				Quantity:    item.Quantity,
				Accessories: item.Accessories,
				UnitPrice:   item.UnitPrice(),
				TotalPrice:  item.TotalPrice,
			})
		}
		if err := orderRepo.CreateItems(ctx, orderItems); err != nil {
			return apperrors.Internal("failed to snapshot cart lines", err)
		}

		if err := orderRepo.AppendStatus(ctx, &models.OrderStatusHistory{
			OrderID: order.ID,
			Status:  models.OrderStatusPending,
			Notes:   "Order placed",
		}); err != nil {
			return apperrors.Internal("failed to record order status", err)
		}

		if _, err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return apperrors.Internal("failed to clear cart", err)
		}

		order.Items = orderItems
		created = order
		return nil
	})
	if err != nil {
		if appErr, ok := apperrors.As(err); ok {
			return nil, appErr
		}
		return nil, apperrors.Internal("order creation failed", err)
	}

	s.logger.Info("order created",
		zap.String("orderId", created.ID.String()),
		zap.String("orderNumber", created.OrderNumber),
		zap.String("userId", userID.String()),
		zap.Float64("finalAmount", created.FinalAmount))
	return created, nil
}

func (s *orderService) CreateForGuest(ctx context.Context, sessionToken string, req models.CreateOrderRequest) (*models.Order, error) {
	guest, err := s.identity.Ensure(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	order, err := s.Create(ctx, guest.ID, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionToken)
	return order, nil
}

// nextOrderNumber allocates REQ-YYYYMMDD-NNNN, where NNNN counts orders
// placed since local midnight. Called inside the creation transaction so two
// simultaneous checkouts cannot observe the same count.
func nextOrderNumber(ctx context.Context, orderRepo repository.OrderRepository) (string, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := orderRepo.CountSince(ctx, midnight)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REQ-%s-%04d", now.Format("20060102"), count+1), nil
}

func (s *orderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, apperrors.Internal("failed to load order", err)
	}
	return order, nil
}

func (s *orderService) GetByNumber(ctx context.Context, userID uuid.UUID, orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, apperrors.Internal("failed to load order", err)
	}
	return order, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("failed to list orders", err)
	}
	return orders, nil
}

func (s *orderService) ListAll(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.Validation("unknown order status: " + string(status))
	}
	orders, err := s.orderRepo.FindAll(ctx, status, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("failed to list orders", err)
	}
	return orders, nil
}

func (s *orderService) History(ctx context.Context, userID, orderID uuid.UUID) ([]models.OrderStatusHistory, error) {
	if _, err := s.GetByID(ctx, userID, orderID); err != nil {
		return nil, err
	}
	history, err := s.orderRepo.StatusHistory(ctx, orderID)
	if err != nil {
		return nil, apperrors.Internal("failed to load status history", err)
	}
	return history, nil
}

// UpdateStatus moves an order along the forward-only machine. The status
// write and the history append share a transaction.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	if !req.Status.Valid() {
		return nil, apperrors.Validation("unknown order status: " + string(req.Status))
	}

	var updated *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderRepo := repository.NewOrderRepository(tx)

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("order not found")
			}
			return apperrors.Internal("failed to load order", err)
		}
		if !order.Status.CanTransitionTo(req.Status) {
			return apperrors.Conflict(fmt.Sprintf("cannot move order from %s to %s", order.Status, req.Status))
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, req.Status); err != nil {
			return apperrors.Internal("failed to update order status", err)
		}
		if err := orderRepo.AppendStatus(ctx, &models.OrderStatusHistory{
			OrderID: orderID,
			Status:  req.Status,
			Notes:   req.Notes,
		}); err != nil {
			return apperrors.Internal("failed to record status change", err)
		}

		order.Status = req.Status
		updated = order
		return nil
	})
	if err != nil {
		if appErr, ok := apperrors.As(err); ok {
			return nil, appErr
		}
		return nil, apperrors.Internal("status update failed", err)
	}

	s.logger.Info("order status updated",
		zap.String("orderId", orderID.String()),
		zap.String("status", string(req.Status)))
	return updated, nil
}

// Cancel is the customer-facing transition; ownership is checked before the
// state machine is consulted.
func (s *orderService) Cancel(ctx context.Context, userID, orderID uuid.UUID, reason string) (*models.Order, error) {
	if _, err := s.GetByID(ctx, userID, orderID); err != nil {
		return nil, err
	}
	notes := reason
	if notes == "" {
		notes = "Cancelled by customer"
	}
	return s.UpdateStatus(ctx, orderID, models.UpdateOrderStatusRequest{
		Status: models.OrderStatusCancelled,
		Notes:  notes,
	})
}

// Statistics aggregates the trailing 30 days.
func (s *orderService) Statistics(ctx context.Context) (*models.OrderStatistics, error) {
	stats, err := s.orderRepo.Statistics(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, apperrors.Internal("failed to compute order statistics", err)
	}
	return stats, nil
}
