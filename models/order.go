package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the forward-only state machine. Cancellation is
// reachable from every pre-delivered state; delivered and cancelled are
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is the header of an immutable purchase snapshot. The customer,
// delivery and payment blobs are captured verbatim at creation time and are
// never re-derived from the user row.
type Order struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber  string          `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CustomerInfo json.RawMessage `gorm:"type:jsonb;serializer:json" json:"customer_info"`
	DeliveryInfo json.RawMessage `gorm:"type:jsonb;serializer:json" json:"delivery_info"`
	PaymentInfo  json.RawMessage `gorm:"type:jsonb;serializer:json" json:"payment_info"`
	OrderNotes   string          `gorm:"type:text" json:"order_notes"`
	TotalAmount  float64         `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	DeliveryFee  float64         `gorm:"type:decimal(10,2);default:0" json:"delivery_fee"`
	FinalAmount  float64         `gorm:"type:decimal(10,2);not null" json:"final_amount"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Items         []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"status_history,omitempty"`
}

// OrderItem snapshots one cart line. UnitPrice is divided out of the line
// total exactly once, here, and never recomputed afterwards.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	VariantID   uuid.UUID       `gorm:"type:uuid;not null" json:"variant_id"`
	ColorID     uuid.UUID       `gorm:"type:uuid;not null" json:"color_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Accessories json.RawMessage `gorm:"type:jsonb;serializer:json" json:"accessories"`
	UnitPrice   float64         `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice  float64         `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// OrderStatusHistory is the append-only status log.
type OrderStatusHistory struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"order_id"`
	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Notes     string      `gorm:"type:text" json:"notes"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}

type CreateOrderRequest struct {
	CustomerInfo json.RawMessage `json:"customer_info" binding:"required"`
	DeliveryInfo json.RawMessage `json:"delivery_info" binding:"required"`
	PaymentInfo  json.RawMessage `json:"payment_info" binding:"required"`
	OrderNotes   string          `json:"order_notes"`
	DeliveryFee  float64         `json:"delivery_fee" binding:"gte=0"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
	Notes  string      `json:"notes"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type OrderStatistics struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	ConfirmedOrders int64   `json:"confirmed_orders"`
	ShippedOrders   int64   `json:"shipped_orders"`
	DeliveredOrders int64   `json:"delivered_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}
