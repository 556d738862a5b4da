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

type ContactService interface {
	Submit(ctx context.Context, req models.SubmitContactRequest) (*models.ContactMessage, error)
	List(ctx context.Context, status string, limit, offset int) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Activities(ctx context.Context, email string, limit int) ([]models.UserActivity, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	logger      *zap.Logger
}

func NewContactService(contactRepo repository.ContactRepository, logger *zap.Logger) ContactService {
	return &contactService{contactRepo: contactRepo, logger: logger}
}

func (s *contactService) Submit(ctx context.Context, req models.SubmitContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	if req.Phone != "" {
		message.Phone = &req.Phone
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, apperrors.Internal("failed to save message", err)
	}

	if err := s.contactRepo.LogActivity(ctx, &models.UserActivity{
		UserEmail:    req.Email,
		ActivityType: "contact_submitted",
		ActivityID:   message.ID,
		Title:        req.Subject,
	}); err != nil {
		s.logger.Warn("contact activity log failed",
			zap.String("messageId", message.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("contact message received",
		zap.String("messageId", message.ID.String()),
		zap.String("email", req.Email))
	return message, nil
}

func (s *contactService) List(ctx context.Context, status string, limit, offset int) ([]models.ContactMessage, error) {
	messages, err := s.contactRepo.FindAll(ctx, status, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("failed to list messages", err)
	}
	return messages, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if err := s.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("message not found")
		}
		return apperrors.Internal("failed to update message", err)
	}
	return nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to delete message", err)
	}
	if rows == 0 {
		return apperrors.NotFound("message not found")
	}
	return nil
}

func (s *contactService) Activities(ctx context.Context, email string, limit int) ([]models.UserActivity, error) {
	activities, err := s.contactRepo.FindActivities(ctx, email, limit)
	if err != nil {
		return nil, apperrors.Internal("failed to load activity log", err)
	}
	return activities, nil
}
