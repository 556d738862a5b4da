package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/middleware"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/services"
)

type CartController struct {
	carts  services.CartService
	logger *zap.Logger
}

func NewCartController(carts services.CartService, logger *zap.Logger) *CartController {
	return &CartController{carts: carts, logger: logger}
}

func (ctl *CartController) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	view, err := ctl.carts.Get(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, view)
}

func (ctl *CartController) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	item, err := ctl.carts.Add(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, item)
}

func (ctl *CartController) UpdateQuantity(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid item id"))
		return
	}
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	item, err := ctl.carts.SetQuantity(c.Request.Context(), user.ID, itemID, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if item == nil {
		respondMessage(c, "item removed")
		return
	}
	respondOK(c, item)
}

func (ctl *CartController) Increment(c *gin.Context) {
	ctl.adjust(c, ctl.carts.Increment)
}

func (ctl *CartController) Decrement(c *gin.Context) {
	ctl.adjust(c, ctl.carts.Decrement)
}

func (ctl *CartController) adjust(c *gin.Context, fn func(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error)) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid item id"))
		return
	}
	item, err := fn(c.Request.Context(), user.ID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	if item == nil {
		respondMessage(c, "item removed")
		return
	}
	respondOK(c, item)
}

func (ctl *CartController) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid item id"))
		return
	}
	if err := ctl.carts.Remove(c.Request.Context(), user.ID, itemID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "item removed")
}

func (ctl *CartController) Clear(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	if err := ctl.carts.Clear(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "cart cleared")
}

func (ctl *CartController) Summary(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	summary, err := ctl.carts.Summary(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, summary)
}
