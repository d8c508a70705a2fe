package controllers

import (
	"StarBoard/middlewares"
	"log/slog"

	"github.com/gin-gonic/gin"
)

var authService AuthServiceInterface

func SetAuthService(service AuthServiceInterface) {
	authService = service
}

type otpForm struct {
	Phone string `form:"phone"`
	Code  string `form:"code"`
}

// RequestOtp sends a login code to the phone.
func RequestOtp(c *gin.Context) {
	var form otpForm
	if !bindForm(c, &form) {
		return
	}

	expiresAt, err := authService.RequestOtp(c.Request.Context(), form.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"expires_at": expiresAt})
}

// VerifyOtp checks the code and sets the session cookie.
func VerifyOtp(c *gin.Context) {
	var form otpForm
	if !bindForm(c, &form) {
		return
	}

	parent, session, err := authService.VerifyOtp(c.Request.Context(), form.Phone, form.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.SetSessionCookie(c, session.Token, session.ExpiresAt)
	middlewares.SetParent(c, parent)
	respondOK(c, gin.H{"parent": parent})
}

// Logout deletes the session and clears the cookie. It succeeds without a session.
func Logout(c *gin.Context) {
	if token := middlewares.SessionToken(c); token != "" {
		if err := authService.Logout(c.Request.Context(), token); err != nil {
			slog.WarnContext(c.Request.Context(), "Failed to delete session", "error", err)
		}
	}
	middlewares.ClearSessionCookie(c)
	respondOK(c, nil)
}
