package routes

import (
	"StarBoard/controllers"
	"StarBoard/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, sessions middlewares.SessionResolver) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public actions
	public := r.Group("/actions")
	public.Use(middlewares.LoadParent(sessions))
	{
		public.POST("/otp/request", controllers.RequestOtp)
		public.POST("/otp/verify", controllers.VerifyOtp)
		public.POST("/logout", controllers.Logout)
	}

	// Protected actions
	actions := r.Group("/actions")
	actions.Use(middlewares.LoadParent(sessions), middlewares.RequireParent())
	{
		actions.POST("/children", controllers.AddChild)
		actions.POST("/tasks", controllers.AddTask)
		actions.POST("/tasks/template", controllers.AddTaskFromTemplate)
		actions.POST("/tasks/active", controllers.SetTaskActive)
		actions.POST("/stars", controllers.LogStars)
		actions.POST("/device", controllers.RegisterDevice)
	}

	api := r.Group("/api")
	api.Use(middlewares.LoadParent(sessions), middlewares.RequireParent())
	{
		api.GET("/me", controllers.GetMe)
		api.GET("/dashboard", controllers.GetDashboard)
		api.GET("/children/:id/calendar", controllers.GetChildCalendar)
		api.GET("/templates", controllers.GetTemplates)
	}

	r.GET("/ws", middlewares.LoadParent(sessions), middlewares.RequireParent(), controllers.ServeWs)
}
