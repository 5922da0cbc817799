package handler

import (
	"net/http"

	agentUC "fuel-sense/internal/usecase/agent"
	"fuel-sense/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AgentHandler struct {
	service *agentUC.Service
}

func NewAgentHandler(service *agentUC.Service) *AgentHandler {
	return &AgentHandler{service: service}
}

func (h *AgentHandler) RegisterRoutes(router *gin.RouterGroup) {
	runs := router.Group("/analysis-runs")
	{
		runs.GET("", h.ListRuns)
		runs.GET("/:id", h.GetRun)
	}
}

func (h *AgentHandler) ListRuns(c *gin.Context) {
	if raw := c.Query("cargo_id"); raw != "" {
		cargoID, err := uuid.Parse(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cargo ID")
			return
		}

		result, err := h.service.ListByCargo(c.Request.Context(), cargoID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Analysis runs retrieved successfully", result)
		return
	}

	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Analysis runs retrieved successfully", result)
}

func (h *AgentHandler) GetRun(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid run ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), runID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Analysis run retrieved successfully", result)
}
