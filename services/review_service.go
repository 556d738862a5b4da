package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/repository"
)

type ReviewService interface {
	Submit(ctx context.Context, req models.SubmitReviewRequest) (*models.Review, error)
	ForProduct(ctx context.Context, productID uuid.UUID) (*models.ProductReviews, error)
	List(ctx context.Context, limit, offset int) ([]models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	contactRepo repository.ContactRepository
	logger      *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, contactRepo repository.ContactRepository, logger *zap.Logger) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, contactRepo: contactRepo, logger: logger}
}

func (s *reviewService) Submit(ctx context.Context, req models.SubmitReviewRequest) (*models.Review, error) {
	review := &models.Review{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Rating:      req.Rating,
		Title:       req.Title,
		Review:      req.Review,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperrors.Internal("failed to save review", err)
	}

	// Activity logging is best-effort; a failed write never fails the review.
	if err := s.contactRepo.LogActivity(ctx, &models.UserActivity{
		UserEmail:    req.UserEmail,
		ActivityType: "review_submitted",
		ActivityID:   review.ID,
		Title:        req.Title,
	}); err != nil {
		s.logger.Warn("review activity log failed",
			zap.String("reviewId", review.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("review submitted",
		zap.String("reviewId", review.ID.String()),
		zap.String("productId", req.ProductID.String()),
		zap.Int("rating", req.Rating))
	return review, nil
}

func (s *reviewService) ForProduct(ctx context.Context, productID uuid.UUID) (*models.ProductReviews, error) {
	reviews, err := s.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.Internal("failed to load reviews", err)
	}
	average, count, err := s.reviewRepo.AverageRating(ctx, productID)
	if err != nil {
		return nil, apperrors.Internal("failed to aggregate rating", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return &models.ProductReviews{
		Reviews:       reviews,
		AverageRating: average,
		Count:         count,
	}, nil
}

func (s *reviewService) List(ctx context.Context, limit, offset int) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("failed to list reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to delete review", err)
	}
	if rows == 0 {
		return apperrors.NotFound("review not found")
	}
	return nil
}
