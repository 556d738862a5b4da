package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/apperrors"
	"github.com/avpratap/riqueza-backend/middleware"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/services"
)

type AuthController struct {
	auth   services.AuthService
	otps   services.OTPService
	logger *zap.Logger
}

func NewAuthController(auth services.AuthService, otps services.OTPService, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, otps: otps, logger: logger}
}

func (ctl *AuthController) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	verificationID, err := ctl.otps.Send(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"verificationId": verificationID})
}

func (ctl *AuthController) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	if err := ctl.otps.Verify(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "OTP verified")
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	resp, err := ctl.auth.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, resp)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	resp, err := ctl.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

func (ctl *AuthController) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	profile, err := ctl.auth.Profile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile)
}

func (ctl *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("missing bearer token"))
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	updated, err := ctl.auth.UpdateProfile(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, updated)
}
