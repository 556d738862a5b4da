package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avpratap/riqueza-backend/models"
)

// CartRepository defines data access for cart lines. Upsert is the only
// write path for adds: conflict resolution on the composite line index keeps
// concurrent adds from duplicating rows or losing increments.
type CartRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error)
	Upsert(ctx context.Context, item *models.CartItem) error
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int, totalPrice float64) error
	Delete(ctx context.Context, userID, itemID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Summary(ctx context.Context, userID uuid.UUID) (*models.CartSummary, error)
}

type GormCartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *GormCartRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert inserts the line or, on conflict with an existing
// (user, product, variant, color) line, sums quantity and total price in a
// single atomic statement. Accessories are last-write-wins.
func (r *GormCartRepository) Upsert(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "product_id"},
			{Name: "variant_id"},
			{Name: "color_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":    gorm.Expr("cart_items.quantity + excluded.quantity"),
			"total_price": gorm.Expr("cart_items.total_price + excluded.total_price"),
			"accessories": gorm.Expr("excluded.accessories"),
			"updated_at":  gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(item).Error
}

func (r *GormCartRepository) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int, totalPrice float64) error {
	res := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]interface{}{
			"quantity":    quantity,
			"total_price": totalPrice,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCartRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *GormCartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *GormCartRepository) Summary(ctx context.Context, userID uuid.UUID) (*models.CartSummary, error) {
	var summary models.CartSummary
	err := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Select("COUNT(*) as total_items, COALESCE(SUM(quantity), 0) as total_quantity, COALESCE(SUM(total_price), 0) as total_price").
		Where("user_id = ?", userID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	summary.IsEmpty = summary.TotalItems == 0
	return &summary, nil
}
