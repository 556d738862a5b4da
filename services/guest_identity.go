package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

// DeriveGuestID maps an opaque session token to a stable user ID: the first
// 16 bytes of the token's SHA-256 digest, laid out as a UUID. The same token
// always lands on the same ID, so a guest cart needs no server-side session
// state. The raw digest bytes are kept as-is, version bits included.
func DeriveGuestID(sessionToken string) uuid.UUID {
	sum := sha256.Sum256([]byte(sessionToken))
	id, _ := uuid.FromBytes(sum[:16])
	return id
}

// GuestIdentityService lazily materialises placeholder user rows for guest
// sessions so cart lines always have a user to hang off.
type GuestIdentityService interface {
	// Resolve derives the guest ID without touching the database.
	Resolve(sessionToken string) uuid.UUID
	// Ensure derives the guest ID and creates the placeholder row if it
	// does not exist yet.
	Ensure(ctx context.Context, sessionToken string) (*models.User, error)
}

type guestIdentityService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewGuestIdentityService(userRepo repository.UserRepository, logger *zap.Logger) GuestIdentityService {
	return &guestIdentityService{userRepo: userRepo, logger: logger}
}

func (s *guestIdentityService) Resolve(sessionToken string) uuid.UUID {
	return DeriveGuestID(sessionToken)
}

func (s *guestIdentityService) Ensure(ctx context.Context, sessionToken string) (*models.User, error) {
	id := DeriveGuestID(sessionToken)

	user, err := s.userRepo.FindGuestByID(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("failed to look up guest", err)
	}

	token := sessionToken
	guest := &models.User{
		ID:         id,
		Phone:      "guest_" + randomSuffix(),
		Name:       "Guest User",
		Role:       models.RoleGuest,
		IsVerified: false,
		SessionID:  &token,
	}
	if err := s.userRepo.Create(ctx, guest); err != nil {
		// A concurrent request may have created the row between the
		// lookup and the insert; re-read before giving up.
		if existing, lookupErr := s.userRepo.FindGuestByID(ctx, id); lookupErr == nil {
			return existing, nil
		}
		return nil, apperrors.Internal("failed to create guest", err)
	}

	s.logger.Info("guest identity created", zap.String("guestId", id.String()))
	return guest, nil
}

// randomSuffix yields 8 hex chars for the synthetic guest phone. The phone
// column is unique, so collisions fail the insert rather than mix carts.
func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte{0, 0, 0, 0})
	}
	return hex.EncodeToString(b)
}
