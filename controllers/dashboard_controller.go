package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eco4-survey-crm/services"
)

// DashboardController handles HTTP requests for the dashboard statistics view
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller instance
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats handles GET /api/dashboard
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard statistics"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
