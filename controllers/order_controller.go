package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/middleware"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/services"
)

type OrderController struct {
	orders services.OrderService
	logger *zap.Logger
}

func NewOrderController(orders services.OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{orders: orders, logger: logger}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (ctl *OrderController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	order, err := ctl.orders.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, order)
}

// CreateGuest places an order for a guest session without authentication.
func (ctl *OrderController) CreateGuest(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	order, err := ctl.orders.CreateForGuest(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, order)
}

func (ctl *OrderController) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	limit, offset := pagination(c)
	orders, err := ctl.orders.ListByUser(c.Request.Context(), user.ID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func (ctl *OrderController) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid order id"))
		return
	}
	order, err := ctl.orders.GetByID(c.Request.Context(), user.ID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

func (ctl *OrderController) GetByNumber(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	order, err := ctl.orders.GetByNumber(c.Request.Context(), user.ID, c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

func (ctl *OrderController) History(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid order id"))
		return
	}
	history, err := ctl.orders.History(c.Request.Context(), user.ID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, history)
}

func (ctl *OrderController) Cancel(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid order id"))
		return
	}
	var req models.CancelOrderRequest
	_ = c.ShouldBindJSON(&req)
	order, err := ctl.orders.Cancel(c.Request.Context(), user.ID, orderID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

// Guest read handlers resolve the owner through the canonical session-token
// derivation, so a guest can follow up on an order with nothing but the
// session header it checked out with.

func (ctl *OrderController) GetGuest(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid order id"))
		return
	}
	order, err := ctl.orders.GetByID(c.Request.Context(), services.DeriveGuestID(session), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

func (ctl *OrderController) GetGuestByNumber(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := ctl.orders.GetByNumber(c.Request.Context(), services.DeriveGuestID(session), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

func (ctl *OrderController) ListGuest(c *gin.Context) {
	session, err := guestSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	limit, offset := pagination(c)
	orders, err := ctl.orders.ListByUser(c.Request.Context(), services.DeriveGuestID(session), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

// Admin handlers.

func (ctl *OrderController) ListAll(c *gin.Context) {
	limit, offset := pagination(c)
	status := models.OrderStatus(c.Query("status"))
	orders, err := ctl.orders.ListAll(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid order id"))
		return
	}
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	order, err := ctl.orders.UpdateStatus(c.Request.Context(), orderID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

func (ctl *OrderController) Statistics(c *gin.Context) {
	stats, err := ctl.orders.Statistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}
