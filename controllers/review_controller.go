package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/services"
)

type ReviewController struct {
	reviews services.ReviewService
	logger  *zap.Logger
}

func NewReviewController(reviews services.ReviewService, logger *zap.Logger) *ReviewController {
	return &ReviewController{reviews: reviews, logger: logger}
}

func (ctl *ReviewController) Submit(c *gin.Context) {
	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	review, err := ctl.reviews.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, review)
}

func (ctl *ReviewController) ForProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid product id"))
		return
	}
	reviews, err := ctl.reviews.ForProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, reviews)
}

func (ctl *ReviewController) List(c *gin.Context) {
	limit, offset := pagination(c)
	reviews, err := ctl.reviews.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, reviews)
}

func (ctl *ReviewController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid review id"))
		return
	}
	if err := ctl.reviews.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "review deleted")
}
