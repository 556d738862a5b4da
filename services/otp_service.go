package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

// OTPService issues and checks one-time codes for phone verification. Codes
// are bcrypt-hashed at rest; clients hold only the verification handle.
type OTPService interface {
	Send(ctx context.Context, phoneNumber string) (verificationID string, err error)
	// Verify checks the code without consuming it, for the standalone
	// verify endpoint.
	Verify(ctx context.Context, req models.VerifyOTPRequest) error
	// Consume checks the code and marks it used; login and signup go
	// through this so a code cannot authenticate twice.
	Consume(ctx context.Context, verificationID, phoneNumber, code string) error
}

type otpService struct {
	otpRepo repository.OTPRepository
	sender  SMSSender
	expiry  time.Duration
	logger  *zap.Logger
}

func NewOTPService(otpRepo repository.OTPRepository, sender SMSSender, expiry time.Duration, logger *zap.Logger) OTPService {
	return &otpService{otpRepo: otpRepo, sender: sender, expiry: expiry, logger: logger}
}

func (s *otpService) Send(ctx context.Context, phoneNumber string) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", apperrors.Internal("failed to generate OTP", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Internal("failed to hash OTP", err)
	}

	verificationID := "otp_" + uuid.NewString()
	otp := &models.OTP{
		PhoneNumber:    phoneNumber,
		OTPHash:        string(hash),
		VerificationID: verificationID,
		ExpiresAt:      time.Now().Add(s.expiry),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return "", apperrors.Internal("failed to store OTP", err)
	}

	// Opportunistic cleanup; stale rows never block a send.
	if n, err := s.otpRepo.DeleteExpired(ctx); err != nil {
		s.logger.Warn("expired OTP cleanup failed", zap.Error(err))
	} else if n > 0 {
		s.logger.Debug("expired OTPs purged", zap.Int64("count", n))
	}

	msg := fmt.Sprintf("Your Riqueza verification code is %s. It expires in %d minutes.",
		code, int(s.expiry.Minutes()))
	if err := s.sender.SendSMS(ctx, phoneNumber, msg); err != nil {
		s.logger.Error("OTP delivery failed",
			zap.String("phone", phoneNumber),
			zap.Error(err))
		return "", apperrors.Internal("failed to send OTP", err)
	}

	s.logger.Info("OTP sent",
		zap.String("phone", phoneNumber),
		zap.String("verificationId", verificationID))
	return verificationID, nil
}

func (s *otpService) Verify(ctx context.Context, req models.VerifyOTPRequest) error {
	_, err := s.check(ctx, req.VerificationID, req.PhoneNumber, req.OTP)
	return err
}

func (s *otpService) Consume(ctx context.Context, verificationID, phoneNumber, code string) error {
	otp, err := s.check(ctx, verificationID, phoneNumber, code)
	if err != nil {
		return err
	}
	if err := s.otpRepo.MarkUsed(ctx, otp.VerificationID); err != nil {
		return apperrors.Internal("failed to consume OTP", err)
	}
	return nil
}

func (s *otpService) check(ctx context.Context, verificationID, phoneNumber, code string) (*models.OTP, error) {
	otp, err := s.otpRepo.FindActive(ctx, verificationID, phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("invalid or expired OTP")
		}
		return nil, apperrors.Internal("failed to look up OTP", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(otp.OTPHash), []byte(code)) != nil {
		return nil, apperrors.Unauthorized("invalid or expired OTP")
	}
	return otp, nil
}

// generateOTP draws a uniform 6-digit code from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
