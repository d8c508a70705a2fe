package controllers

import (
	"StarBoard/middlewares"
	"StarBoard/services"

	"github.com/gin-gonic/gin"
)

var taskService TaskServiceInterface

func SetTaskService(service TaskServiceInterface) {
	taskService = service
}

func AddTask(c *gin.Context) {
	var form struct {
		ChildID     string `form:"childId"`
		Title       string `form:"title"`
		Description string `form:"description"`
		Stars       string `form:"stars"`
		Schedule    string `form:"schedule"`
	}
	if !bindForm(c, &form) {
		return
	}

	task, err := taskService.AddTask(c.Request.Context(), middlewares.CurrentParent(c), services.AddTaskInput{
		ChildID:     form.ChildID,
		Title:       form.Title,
		Description: form.Description,
		Stars:       optionalInt(form.Stars),
		Schedule:    form.Schedule,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"task": task})
}

func AddTaskFromTemplate(c *gin.Context) {
	var form struct {
		ChildID     string `form:"childId"`
		TemplateKey string `form:"templateKey"`
	}
	if !bindForm(c, &form) {
		return
	}

	task, err := taskService.AddTaskFromTemplate(c.Request.Context(), middlewares.CurrentParent(c), form.ChildID, form.TemplateKey)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"task": task})
}

// SetTaskActive archives (active=false) or restores a task.
func SetTaskActive(c *gin.Context) {
	var form struct {
		TaskID string `form:"taskId"`
		Active string `form:"active"`
	}
	if !bindForm(c, &form) {
		return
	}

	if err := taskService.SetTaskActive(c.Request.Context(), middlewares.CurrentParent(c), form.TaskID, formBool(form.Active)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
