package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avpratap/riqueza-backend/apperrors"
)

// Every handler answers with the same envelope: {"success": true, "data": ...}
// or {"success": false, "error": "..."}.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": message}})
}

func respondError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal("something went wrong", err)
	}
	c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
}

func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request: " + err.Error()})
}
