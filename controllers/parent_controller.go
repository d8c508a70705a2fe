package controllers

import (
	"StarBoard/middlewares"

	"github.com/gin-gonic/gin"
)

var parentService ParentServiceInterface

func SetParentService(service ParentServiceInterface) {
	parentService = service
}

// GetMe returns the logged in parent and their children.
func GetMe(c *gin.Context) {
	profile, err := parentService.Profile(c.Request.Context(), middlewares.CurrentParent(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"parent": profile.Parent, "children": profile.Children})
}

// RegisterDevice stores the FCM token of the parent's device.
func RegisterDevice(c *gin.Context) {
	var form struct {
		Token string `form:"token"`
	}
	if !bindForm(c, &form) {
		return
	}

	if err := parentService.RegisterDevice(c.Request.Context(), middlewares.CurrentParent(c), form.Token); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
