package models

import (
	"time"

	"github.com/google/uuid"
)

// Review rows are hard-deleted, unlike products.
type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Rating      int       `gorm:"not null" json:"rating"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Review      string    `gorm:"type:text;not null" json:"review"`
	UserName    string    `gorm:"size:100;not null" json:"user_name"`
	UserEmail   string    `gorm:"size:100;not null" json:"user_email"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type SubmitReviewRequest struct {
	ProductID   uuid.UUID `json:"productId" binding:"required"`
	ProductName string    `json:"productName" binding:"required"`
	Rating      int       `json:"rating" binding:"required,min=1,max=5"`
	Title       string    `json:"title" binding:"required"`
	Review      string    `json:"review" binding:"required"`
	UserName    string    `json:"userName" binding:"required"`
	UserEmail   string    `json:"userEmail" binding:"required,email"`
}

type ProductReviews struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
	Count         int64    `json:"count"`
}
