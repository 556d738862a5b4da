package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/middleware"
	"github.com/avpratap/riqueza-backend/services"
)

type CartTransferController struct {
	transfers services.CartTransferService
	logger    *zap.Logger
}

func NewCartTransferController(transfers services.CartTransferService, logger *zap.Logger) *CartTransferController {
	return &CartTransferController{transfers: transfers, logger: logger}
}

// Transfer merges the guest cart identified by the X-Guest-Session-Id header
// into the authenticated caller's cart. Typically fired right after login, so
// the request carries both the bearer token and the guest session header.
func (ctl *CartTransferController) Transfer(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	session := c.GetHeader(GuestSessionHeader)
	if session == "" {
		respondError(c, apperrors.Validation("missing "+GuestSessionHeader+" header"))
		return
	}
	result, err := ctl.transfers.Transfer(c.Request.Context(), session, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Successfully transferred %d cart item(s)", result.ItemsTransferred),
		"data":    result,
	})
}
