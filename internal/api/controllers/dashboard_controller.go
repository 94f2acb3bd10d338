package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teampulse/internal/services"
	"teampulse/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// ManagerDashboard godoc
// @Summary Per-team-member feedback counts and sentiment breakdown
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /dashboard/manager [get]
func (d *DashboardController) ManagerDashboard(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid principal")
		return
	}

	summaries, err := d.dashboardService.BuildManagerDashboard(c.Request.Context(), principal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Dashboard built successfully")
}
