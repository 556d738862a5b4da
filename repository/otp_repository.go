package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/models"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *models.OTP) error
	FindActive(ctx context.Context, verificationID, phoneNumber string) (*models.OTP, error)
	MarkUsed(ctx context.Context, verificationID string) error
	Delete(ctx context.Context, verificationID string) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type GormOTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &GormOTPRepository{db: db}
}

func (r *GormOTPRepository) Create(ctx context.Context, otp *models.OTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

// FindActive returns the pending OTP row for a verification handle, skipping
// used and expired codes.
func (r *GormOTPRepository) FindActive(ctx context.Context, verificationID, phoneNumber string) (*models.OTP, error) {
	var otp models.OTP
	err := r.db.WithContext(ctx).
		Where("verification_id = ? AND phone_number = ? AND expires_at > ? AND is_used = ?",
			verificationID, phoneNumber, time.Now(), false).
		First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *GormOTPRepository) MarkUsed(ctx context.Context, verificationID string) error {
	return r.db.WithContext(ctx).Model(&models.OTP{}).
		Where("verification_id = ?", verificationID).
		Update("is_used", true).Error
}

func (r *GormOTPRepository) Delete(ctx context.Context, verificationID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("verification_id = ?", verificationID).
		Delete(&models.OTP{})
	return res.RowsAffected, res.Error
}

func (r *GormOTPRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.OTP{})
	return res.RowsAffected, res.Error
}
