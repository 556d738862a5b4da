package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CartItem is one cart line. The composite unique index on
// (user_id, product_id, variant_id, color_id) is what makes concurrent adds
// safe: repeats resolve through ON CONFLICT instead of a read-then-write.
// TotalPrice is the stored line total; unit price is derived from
// (TotalPrice, Quantity) at the few points that need it.
type CartItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line" json:"user_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line" json:"product_id"`
	VariantID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line" json:"variant_id"`
	ColorID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line" json:"color_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Accessories json.RawMessage `gorm:"type:jsonb;serializer:json" json:"accessories"`
	TotalPrice  float64         `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// UnitPrice derives the per-unit price from the stored line total.
func (ci *CartItem) UnitPrice() float64 {
	if ci.Quantity == 0 {
		return 0
	}
	return ci.TotalPrice / float64(ci.Quantity)
}

type AddCartItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	VariantID   uuid.UUID       `json:"variant_id" binding:"required"`
	ColorID     uuid.UUID       `json:"color_id" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	Accessories json.RawMessage `json:"accessories"`
	TotalPrice  float64         `json:"total_price" binding:"required,gt=0"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

type CartSummary struct {
	TotalItems    int64   `json:"total_items"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalPrice    float64 `json:"total_price"`
	IsEmpty       bool    `json:"is_empty"`
}

type CartView struct {
	Items   []CartItem  `json:"items"`
	Summary CartSummary `json:"summary"`
}

// TransferResult reports the outcome of a guest-to-user cart merge.
type TransferResult struct {
	ItemsTransferred int       `json:"itemsTransferred"`
	TotalItemsFound  int       `json:"totalItemsFound"`
	GuestUserID      uuid.UUID `json:"guestUserId"`
}
