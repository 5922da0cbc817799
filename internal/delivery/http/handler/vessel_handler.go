package handler

import (
	"errors"
	"net/http"
	"time"

	domainVessel "fuel-sense/internal/domain/vessel"
	vesselUC "fuel-sense/internal/usecase/vessel"
	"fuel-sense/internal/validator"
	"fuel-sense/pkg/utils"

	"github.com/gin-gonic/gin"
)

type VesselHandler struct {
	service *vesselUC.Service
}

func NewVesselHandler(service *vesselUC.Service) *VesselHandler {
	return &VesselHandler{service: service}
}

func (h *VesselHandler) RegisterRoutes(router *gin.RouterGroup) {
	vessels := router.Group("/vessels")
	{
		vessels.GET("", h.ListVessels)
		vessels.GET("/:imo", h.GetVessel)
	}
}

func (h *VesselHandler) RegisterVesselRoutes(router *gin.RouterGroup) {
	vessels := router.Group("/vessels")
	{
		vessels.POST("/:imo/rob", h.UpdateROB)
		vessels.POST("/:imo/position", h.UpdatePosition)
	}
}

func (h *VesselHandler) ListVessels(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vessels retrieved successfully", result)
}

func (h *VesselHandler) GetVessel(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("imo"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vessel retrieved successfully", result)
}

type updateROBRequest struct {
	ROB map[domainVessel.FuelGrade]float64 `json:"rob" validate:"required,min=1,dive,keys,fuel_grade,endkeys,gte=0"`
}

func (h *VesselHandler) UpdateROB(c *gin.Context) {
	var req updateROBRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.UpdateROB(c.Request.Context(), c.Param("imo"), req.ROB)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domainVessel.ErrVesselNotFound) {
			status = http.StatusNotFound
		}
		utils.ErrorResponse(c, status, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ROB updated successfully", result)
}

type updatePositionRequest struct {
	Lat        float64   `json:"lat" binding:"min=-90,max=90"`
	Lon        float64   `json:"lon" binding:"min=-180,max=180"`
	Port       string    `json:"port"`
	SpeedKnots float64   `json:"speed_knots" binding:"min=0"`
	HeadingDeg float64   `json:"heading_deg" binding:"min=0,max=360"`
	NextPort   string    `json:"next_port"`
	ETA        time.Time `json:"eta"`
}

func (h *VesselHandler) UpdatePosition(c *gin.Context) {
	var req updatePositionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	pos := domainVessel.Position{Lat: req.Lat, Lon: req.Lon, Port: req.Port}

	result, err := h.service.UpdatePosition(c.Request.Context(), c.Param("imo"), pos, req.SpeedKnots, req.HeadingDeg, req.NextPort, req.ETA)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domainVessel.ErrVesselNotFound) {
			status = http.StatusNotFound
		}
		utils.ErrorResponse(c, status, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Position updated successfully", result)
}
