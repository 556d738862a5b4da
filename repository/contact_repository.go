package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	FindAll(ctx context.Context, status string, limit, offset int) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	LogActivity(ctx context.Context, activity *models.UserActivity) error
	FindActivities(ctx context.Context, email string, limit int) ([]models.UserActivity, error)
}

type GormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *GormContactRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]models.ContactMessage, error) {
	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var messages []models.ContactMessage
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *GormContactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormContactRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ContactMessage{})
	return res.RowsAffected, res.Error
}

func (r *GormContactRepository) LogActivity(ctx context.Context, activity *models.UserActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *GormContactRepository) FindActivities(ctx context.Context, email string, limit int) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
