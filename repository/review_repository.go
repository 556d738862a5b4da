package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.Review, error)
	AverageRating(ctx context.Context, productID uuid.UUID) (float64, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) FindAll(ctx context.Context, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, int64, error) {
	var result struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("product_id = ?", productID).
		Scan(&result).Error
	return result.Average, result.Count, err
}

func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Review{})
	return res.RowsAffected, res.Error
}
