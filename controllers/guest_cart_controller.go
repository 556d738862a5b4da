package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/services"
)

// GuestSessionHeader carries the opaque guest session token.
const GuestSessionHeader = "X-Guest-Session-Id"

// guestSession extracts the session token. Guest endpoints refuse requests
// that carry a bearer token: an authenticated client must use the
// authenticated cart, otherwise its lines would land on a derived guest
// identity instead of its account.
func guestSession(c *gin.Context) (string, error) {
	if c.GetHeader("Authorization") != "" {
		return "", apperrors.Validation("guest endpoints do not accept bearer tokens; use the authenticated cart")
	}
	token := c.GetHeader(GuestSessionHeader)
	if token == "" {
		return "", apperrors.Validation("missing " + GuestSessionHeader + " header")
	}
	return token, nil
}

type GuestCartController struct {
	carts  services.GuestCartService
	logger *zap.Logger
}

func NewGuestCartController(carts services.GuestCartService, logger *zap.Logger) *GuestCartController {
	return &GuestCartController{carts: carts, logger: logger}
}

func (ctl *GuestCartController) Get(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := ctl.carts.Get(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, view)
}

func (ctl *GuestCartController) Add(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	item, err := ctl.carts.Add(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, item)
}

func (ctl *GuestCartController) UpdateQuantity(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
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
	item, err := ctl.carts.SetQuantity(c.Request.Context(), session, itemID, *req.Quantity)
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

func (ctl *GuestCartController) Increment(c *gin.Context) {
	ctl.adjust(c, ctl.carts.Increment)
}

func (ctl *GuestCartController) Decrement(c *gin.Context) {
	ctl.adjust(c, ctl.carts.Decrement)
}

func (ctl *GuestCartController) adjust(c *gin.Context, fn func(ctx context.Context, session string, itemID uuid.UUID) (*models.CartItem, error)) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid item id"))
		return
	}
	item, err := fn(c.Request.Context(), session, itemID)
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

func (ctl *GuestCartController) Remove(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid item id"))
		return
	}
	if err := ctl.carts.Remove(c.Request.Context(), session, itemID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "item removed")
}

func (ctl *GuestCartController) Clear(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ctl.carts.Clear(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "cart cleared")
}

func (ctl *GuestCartController) Summary(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := ctl.carts.Summary(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, summary)
}
