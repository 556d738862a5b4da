package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
)

type stubOTP struct {
	consumeErr error
	consumed   int
}

func (s *stubOTP) Send(context.Context, string) (string, error) { return "otp_stub", nil }
func (s *stubOTP) Verify(context.Context, models.VerifyOTPRequest) error {
	return nil
}
func (s *stubOTP) Consume(context.Context, string, string, string) error {
	s.consumed++
	return s.consumeErr
}

func TestSignupDuplicatePhone(t *testing.T) {
	userRepo := &mockUserRepo{
		existsByPhone: func(context.Context, string) (bool, error) { return true, nil },
	}
	svc := NewAuthService(userRepo, &stubOTP{}, NewTokenService("secret", time.Hour), zap.NewNop())

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		PhoneNumber:    "+911234567890",
		Name:           "Asha",
		OTP:            "123456",
		VerificationID: "otp_x",
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "already exists")
}

func TestSignupIssuesToken(t *testing.T) {
	userRepo := &mockUserRepo{
		existsByPhone: func(context.Context, string) (bool, error) { return false, nil },
		create: func(_ context.Context, user *models.User) error {
			user.ID = uuid.New()
			return nil
		},
	}
	otp := &stubOTP{}
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAuthService(userRepo, otp, tokens, zap.NewNop())

	resp, err := svc.Signup(context.Background(), models.SignupRequest{
		PhoneNumber:    "+911234567890",
		Name:           "Asha",
		Email:          "asha@example.com",
		OTP:            "123456",
		VerificationID: "otp_x",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, otp.consumed, "signup must consume the code")
	assert.Equal(t, models.RoleUser, resp.User.Role)

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.ID)
	assert.Equal(t, "+911234567890", claims.Phone)
}

func TestLoginUnknownPhone(t *testing.T) {
	userRepo := &mockUserRepo{
		findByPhone: func(context.Context, string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewAuthService(userRepo, &stubOTP{}, NewTokenService("secret", time.Hour), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		PhoneNumber:    "+910000000000",
		OTP:            "123456",
		VerificationID: "otp_x",
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestLoginRejectedWhenOTPFails(t *testing.T) {
	otp := &stubOTP{consumeErr: apperrors.Unauthorized("invalid or expired OTP")}
	svc := NewAuthService(&mockUserRepo{}, otp, NewTokenService("secret", time.Hour), zap.NewNop())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		PhoneNumber:    "+911234567890",
		OTP:            "000000",
		VerificationID: "otp_x",
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Code)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("another-secret", time.Hour)
	email := "dev@example.com"
	user := &models.User{ID: uuid.New(), Phone: "+911112223334", Name: "Dev", Email: &email, Role: models.RoleAdmin}

	signed, err := tokens.Generate(user)
	require.NoError(t, err)

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.ID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, email, claims.Email)

	_, err = NewTokenService("wrong-secret", time.Hour).Validate(signed)
	assert.Error(t, err)
}
