package handler

import (
	"net/http"

	domainUser "fuel-sense/internal/domain/user"
	dashboardUC "fuel-sense/internal/usecase/dashboard"
	"fuel-sense/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	service *dashboardUC.Service
}

func NewDashboardHandler(service *dashboardUC.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/summary", h.GetSummary)
		dashboard.POST("/tasks/:id/complete", h.CompleteTask)
	}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	role := domainUser.Role(c.MustGet("role").(string))

	result, err := h.service.Summary(c.Request.Context(), role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard summary retrieved successfully", result)
}

func (h *DashboardHandler) CompleteTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.service.CompleteTask(c.Request.Context(), taskID); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task completed successfully", nil)
}
