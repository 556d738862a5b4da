package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/services"
)

type ContactController struct {
	contacts services.ContactService
	logger   *zap.Logger
}

func NewContactController(contacts services.ContactService, logger *zap.Logger) *ContactController {
	return &ContactController{contacts: contacts, logger: logger}
}

func (ctl *ContactController) Submit(c *gin.Context) {
	var req models.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	message, err := ctl.contacts.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, message)
}

func (ctl *ContactController) List(c *gin.Context) {
	limit, offset := pagination(c)
	messages, err := ctl.contacts.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, messages)
}

func (ctl *ContactController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid message id"))
		return
	}
	var req models.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := ctl.contacts.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "status updated")
}

func (ctl *ContactController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid message id"))
		return
	}
	if err := ctl.contacts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "message deleted")
}

func (ctl *ContactController) Activities(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		respondError(c, apperrors.Validation("missing email"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	activities, err := ctl.contacts.Activities(c.Request.Context(), email, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, activities)
}
