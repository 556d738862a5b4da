package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

// OrderRepository defines data access for order headers, lines and the
// status history log.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	CreateItems(ctx context.Context, items []models.OrderItem) error
	AppendStatus(ctx context.Context, entry *models.OrderStatusHistory) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
	FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	FindByIDAndUser(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error)
	FindByNumber(ctx context.Context, orderNumber string, userID uuid.UUID) (*models.Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error)
	FindAll(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error)
	StatusHistory(ctx context.Context, orderID uuid.UUID) ([]models.OrderStatusHistory, error)
	Statistics(ctx context.Context, since time.Time) (*models.OrderStatistics, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) CreateItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *GormOrderRepository) AppendStatus(ctx context.Context, entry *models.OrderStatusHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountSince counts orders created at or after the given instant; the order
// number's daily counter is derived from it inside the creation transaction.
func (r *GormOrderRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) FindByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByIDAndUser(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByNumber(ctx context.Context, orderNumber string, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ? AND user_id = ?", orderNumber, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindAll(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) StatusHistory(ctx context.Context, orderID uuid.UUID) ([]models.OrderStatusHistory, error) {
	var history []models.OrderStatusHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&history).Error
	return history, err
}

func (r *GormOrderRepository) Statistics(ctx context.Context, since time.Time) (*models.OrderStatistics, error) {
	var stats models.OrderStatistics
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select(`COUNT(*) as total_orders,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) as pending_orders,
			COUNT(CASE WHEN status = 'confirmed' THEN 1 END) as confirmed_orders,
			COUNT(CASE WHEN status = 'shipped' THEN 1 END) as shipped_orders,
			COUNT(CASE WHEN status = 'delivered' THEN 1 END) as delivered_orders,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) as cancelled_orders,
			COALESCE(SUM(final_amount), 0) as total_revenue`).
		Where("created_at >= ?", since).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
