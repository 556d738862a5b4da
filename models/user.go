package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// User covers both real phone-verified identities and placeholder guest
// identities. Guests carry a synthetic phone, role "guest" and the opaque
// session token they were derived from.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone      string    `gorm:"size:50;unique;not null" json:"phone"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      *string   `gorm:"size:100" json:"email"`
	Role       string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	IsVerified bool      `gorm:"default:true" json:"isVerified"`
	SessionID  *string   `gorm:"size:255;index" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// OTP stores one pending phone verification. The code itself is bcrypt-hashed
// at rest; VerificationID is the opaque handle handed back to the client.
type OTP struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PhoneNumber    string    `gorm:"size:20;not null;index"`
	OTPHash        string    `gorm:"size:100;not null"`
	VerificationID string    `gorm:"size:100;uniqueIndex;not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	IsUsed         bool      `gorm:"default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (OTP) TableName() string {
	return "otps"
}

type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
}

type VerifyOTPRequest struct {
	VerificationID string `json:"verificationId" binding:"required"`
	OTP            string `json:"otp" binding:"required,len=6"`
	PhoneNumber    string `json:"phoneNumber" binding:"required,phone"`
}

type SignupRequest struct {
	PhoneNumber    string `json:"phoneNumber" binding:"required,phone"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	OTP            string `json:"otp" binding:"required,len=6"`
	VerificationID string `json:"verificationId" binding:"required"`
}

type LoginRequest struct {
	PhoneNumber    string `json:"phoneNumber" binding:"required,phone"`
	OTP            string `json:"otp" binding:"required,len=6"`
	VerificationID string `json:"verificationId" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}
