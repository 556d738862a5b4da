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

// AuthResponse pairs the authenticated user with a fresh bearer token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	otps     OTPService
	tokens   *TokenService
	logger   *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, otps OTPService, tokens *TokenService, logger *zap.Logger) AuthService {
	return &authService{userRepo: userRepo, otps: otps, tokens: tokens, logger: logger}
}

func (s *authService) Signup(ctx context.Context, req models.SignupRequest) (*AuthResponse, error) {
	if err := s.otps.Consume(ctx, req.VerificationID, req.PhoneNumber, req.OTP); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, apperrors.Internal("failed to check phone", err)
	}
	if exists {
		return nil, apperrors.Conflict("an account with this phone number already exists")
	}

	user := &models.User{
		Phone:      req.PhoneNumber,
		Name:       req.Name,
		Role:       models.RoleUser,
		IsVerified: true,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to create user", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}

	s.logger.Info("user signed up",
		zap.String("userId", user.ID.String()),
		zap.String("phone", user.Phone))
	return &AuthResponse{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error) {
	if err := s.otps.Consume(ctx, req.VerificationID, req.PhoneNumber, req.OTP); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("no account found for this phone number")
		}
		return nil, apperrors.Internal("failed to look up user", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}

	s.logger.Info("user logged in", zap.String("userId", user.ID.String()))
	return &AuthResponse{User: user, Token: token}, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to load profile", err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to load profile", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to update profile", err)
	}
	return user, nil
}
