package controllers

import (
	"StarBoard/middlewares"
	"StarBoard/services"

	"github.com/gin-gonic/gin"
)

var childService ChildServiceInterface

func SetChildService(service ChildServiceInterface) {
	childService = service
}

// AddChild handles POST /actions/children.
func AddChild(c *gin.Context) {
	var form struct {
		Name  string `form:"name"`
		Age   string `form:"age"`
		Color string `form:"color"`
	}
	if !bindForm(c, &form) {
		return
	}

	child, err := childService.AddChild(c.Request.Context(), middlewares.CurrentParent(c), services.AddChildInput{
		Name:  form.Name,
		Age:   optionalInt(form.Age),
		Color: form.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"child": child})
}
