package controllers

import (
	"github.com/gin-gonic/gin"
)

var templateService TemplateServiceInterface

func SetTemplateService(service TemplateServiceInterface) {
	templateService = service
}

// GetTemplates returns the task templates offered when adding a task.
func GetTemplates(c *gin.Context) {
	templates, err := templateService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"templates": templates})
}
