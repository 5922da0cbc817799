package handler

import (
	"errors"
	"net/http"

	domainPlan "fuel-sense/internal/domain/plan"
	planUC "fuel-sense/internal/usecase/plan"
	"fuel-sense/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlanHandler struct {
	service *planUC.Service
}

func NewPlanHandler(service *planUC.Service) *PlanHandler {
	return &PlanHandler{service: service}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
	}
}

func (h *PlanHandler) RegisterOperatorRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	{
		plans.POST("/:id/approve", h.ApprovePlan)
		plans.POST("/:id/reject", h.RejectPlan)
		plans.POST("/:id/complete", h.CompletePlan)
	}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		result, err := h.service.ListByStatus(c.Request.Context(), domainPlan.Status(raw))
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Plans retrieved successfully", result)
		return
	}

	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plans retrieved successfully", result)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan retrieved successfully", result)
}

func (h *PlanHandler) ApprovePlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	approvedBy := c.MustGet("email").(string)

	result, err := h.service.UpdateStatus(c.Request.Context(), planID, domainPlan.StatusApproved, approvedBy, "")
	if err != nil {
		utils.ErrorResponse(c, planErrorStatus(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan approved successfully", result)
}

type rejectPlanRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *PlanHandler) RejectPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	var req rejectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), planID, domainPlan.StatusRejected, "", req.Reason)
	if err != nil {
		utils.ErrorResponse(c, planErrorStatus(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan rejected successfully", result)
}

func (h *PlanHandler) CompletePlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), planID, domainPlan.StatusCompleted, "", "")
	if err != nil {
		utils.ErrorResponse(c, planErrorStatus(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan completed successfully", result)
}

func planErrorStatus(err error) int {
	if errors.Is(err, domainPlan.ErrPlanNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
