package routes

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/avpratap/riqueza-backend/config"
)

// The route table is part of the public interface; clients hardcode these
// paths, so renames are breaking changes.
func TestRouteTable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	require.NoError(t, err)

	router := Setup(config.Config{JWTSecret: "test-secret"}, db, nil, zap.NewNop())

	mounted := map[string]bool{}
	for _, route := range router.Routes() {
		mounted[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/auth/send-otp",
		"POST /api/auth/verify-otp",
		"POST /api/auth/signup",
		"POST /api/auth/login",
		"GET /api/auth/profile",
		"GET /api/products",
		"GET /api/products/:idOrSlug",
		"POST /api/cart/add",
		"PUT /api/cart/items/:itemId/quantity",
		"PUT /api/cart/items/:itemId/increment",
		"PUT /api/cart/items/:itemId/decrement",
		"DELETE /api/cart/items/:itemId",
		"DELETE /api/cart/clear",
		"POST /api/cart-transfer/transfer",
		"GET /api/guest-cart",
		"POST /api/guest-cart/add",
		"PUT /api/guest-cart/items/:itemId/quantity",
		"PUT /api/guest-cart/items/:itemId/increment",
		"PUT /api/guest-cart/items/:itemId/decrement",
		"DELETE /api/guest-cart/items/:itemId",
		"DELETE /api/guest-cart/clear",
		"POST /api/orders",
		"GET /api/orders/:orderId",
		"GET /api/orders/number/:orderNumber",
		"POST /api/orders/:orderId/cancel",
		"PUT /api/orders/:orderId/status",
		"POST /api/guest-orders",
		"GET /api/guest-orders/my-orders",
		"GET /api/guest-orders/number/:orderNumber",
		"GET /api/guest-orders/:orderId",
		"GET /api/user-activities/:email",
		"POST /api/reviews",
		"GET /api/reviews/product/:productId",
		"POST /api/contact",
	}
	for _, route := range want {
		assert.True(t, mounted[route], "missing route %s", route)
	}
}
