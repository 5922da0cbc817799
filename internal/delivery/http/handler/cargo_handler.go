package handler

import (
	"errors"
	"net/http"

	domainCargo "fuel-sense/internal/domain/cargo"
	agentUC "fuel-sense/internal/usecase/agent"
	cargoUC "fuel-sense/internal/usecase/cargo"
	"fuel-sense/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CargoHandler struct {
	service *cargoUC.Service
	agents  *agentUC.Service
}

func NewCargoHandler(service *cargoUC.Service, agents *agentUC.Service) *CargoHandler {
	return &CargoHandler{service: service, agents: agents}
}

func (h *CargoHandler) RegisterRoutes(router *gin.RouterGroup) {
	cargoes := router.Group("/cargoes")
	{
		cargoes.GET("", h.ListCargoes)
		cargoes.GET("/:id", h.GetCargo)
	}
}

func (h *CargoHandler) RegisterChartererRoutes(router *gin.RouterGroup) {
	cargoes := router.Group("/cargoes")
	{
		cargoes.POST("/:id/fix", h.FixCargo)
		cargoes.POST("/:id/reject", h.RejectCargo)
		cargoes.POST("/:id/request-alternative", h.RequestAlternative)
		cargoes.POST("/analyze", h.TriggerAnalysis)
	}
}

func (h *CargoHandler) ListCargoes(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cargoes retrieved successfully", result)
}

func (h *CargoHandler) GetCargo(c *gin.Context) {
	cargoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cargo ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), cargoID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cargo retrieved successfully", result)
}

func (h *CargoHandler) FixCargo(c *gin.Context) {
	cargoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cargo ID")
		return
	}

	result, err := h.service.Fix(c.Request.Context(), cargoID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domainCargo.ErrCargoNotFound) {
			status = http.StatusNotFound
		}
		utils.ErrorResponse(c, status, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cargo fixed successfully", result)
}

func (h *CargoHandler) RejectCargo(c *gin.Context) {
	cargoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cargo ID")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), cargoID, domainCargo.StatusRejected)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domainCargo.ErrCargoNotFound) {
			status = http.StatusNotFound
		}
		utils.ErrorResponse(c, status, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cargo rejected successfully", result)
}

func (h *CargoHandler) RequestAlternative(c *gin.Context) {
	cargoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cargo ID")
		return
	}

	result, err := h.service.RequestAlternative(c.Request.Context(), cargoID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domainCargo.ErrCargoNotFound) {
			status = http.StatusNotFound
		}
		utils.ErrorResponse(c, status, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Alternative plan created successfully", result)
}

type triggerAnalysisRequest struct {
	CargoIDs []uuid.UUID `json:"cargo_ids" binding:"required,min=1"`
}

func (h *CargoHandler) TriggerAnalysis(c *gin.Context) {
	var req triggerAnalysisRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	runs, err := h.agents.TriggerAnalysis(c.Request.Context(), req.CargoIDs, agentUC.DefaultAnalysisDelay)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Analysis triggered successfully", runs)
}
