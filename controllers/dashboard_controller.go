package controllers

import (
	"StarBoard/middlewares"
	"StarBoard/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

var dashboardService DashboardServiceInterface

func SetDashboardService(service DashboardServiceInterface) {
	dashboardService = service
}

func GetDashboard(c *gin.Context) {
	dashboard, err := dashboardService.Dashboard(c.Request.Context(), middlewares.CurrentParent(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"dashboard": dashboard})
}

// GetChildCalendar handles GET /api/children/:id/calendar?year=&month=.
func GetChildCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondError(c, services.ErrInvalidMonth)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		respondError(c, services.ErrInvalidMonth)
		return
	}

	days, err := dashboardService.MonthStars(c.Request.Context(), middlewares.CurrentParent(c), c.Param("id"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"days": days})
}
