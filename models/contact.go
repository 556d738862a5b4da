package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;index" json:"email"`
	Phone     *string   `gorm:"size:50" json:"phone"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;default:'new'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived"`
}

// UserActivity is a best-effort append-only log keyed by email; write
// failures are never surfaced to the caller.
type UserActivity struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserEmail    string    `gorm:"size:100;not null;index" json:"user_email"`
	ActivityType string    `gorm:"size:50;not null" json:"activity_type"`
	ActivityID   uuid.UUID `gorm:"type:uuid" json:"activity_id"`
	Title        string    `gorm:"size:255" json:"title"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserActivity) TableName() string {
	return "user_activity_log"
}
