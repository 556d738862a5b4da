package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/models"
)

type stubGuestCartService struct {
	lastSession string
}

func (s *stubGuestCartService) Get(_ context.Context, session string) (*models.CartView, error) {
	s.lastSession = session
	return &models.CartView{Items: []models.CartItem{}, Summary: models.CartSummary{IsEmpty: true}}, nil
}

func (s *stubGuestCartService) Add(context.Context, string, models.AddCartItemRequest) (*models.CartItem, error) {
	return nil, nil
}

func (s *stubGuestCartService) SetQuantity(context.Context, string, uuid.UUID, int) (*models.CartItem, error) {
	return nil, nil
}

func (s *stubGuestCartService) Increment(context.Context, string, uuid.UUID) (*models.CartItem, error) {
	return nil, nil
}

func (s *stubGuestCartService) Decrement(context.Context, string, uuid.UUID) (*models.CartItem, error) {
	return nil, nil
}

func (s *stubGuestCartService) Remove(context.Context, string, uuid.UUID) error { return nil }
func (s *stubGuestCartService) Clear(context.Context, string) error             { return nil }

func (s *stubGuestCartService) Summary(context.Context, string) (*models.CartSummary, error) {
	return &models.CartSummary{IsEmpty: true}, nil
}

func newGuestCartRouter(svc *stubGuestCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewGuestCartController(svc, zap.NewNop())
	router := gin.New()
	router.GET("/api/guest-cart", ctl.Get)
	return router
}

func TestGuestCartRejectsBearerToken(t *testing.T) {
	router := newGuestCartRouter(&stubGuestCartService{})

	req := httptest.NewRequest(http.MethodGet, "/api/guest-cart", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	req.Header.Set(GuestSessionHeader, "session-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestGuestCartRequiresSessionHeader(t *testing.T) {
	router := newGuestCartRouter(&stubGuestCartService{})

	req := httptest.NewRequest(http.MethodGet, "/api/guest-cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuestCartPassesSessionThrough(t *testing.T) {
	svc := &stubGuestCartService{}
	router := newGuestCartRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/guest-cart", nil)
	req.Header.Set(GuestSessionHeader, "session-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-42", svc.lastSession)

	var body struct {
		Success bool            `json:"success"`
		Data    models.CartView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.Summary.IsEmpty)
}
