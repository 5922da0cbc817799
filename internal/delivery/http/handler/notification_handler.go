package handler

import (
	"net/http"

	domainNotification "fuel-sense/internal/domain/notification"
	domainUser "fuel-sense/internal/domain/user"
	notificationUC "fuel-sense/internal/usecase/notification"
	"fuel-sense/internal/validator"
	"fuel-sense/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service *notificationUC.Service
}

func NewNotificationHandler(service *notificationUC.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.POST("", h.AddNotification)
		notifications.POST("/:id/read", h.MarkAsRead)
		notifications.DELETE("", h.ClearAll)
	}
}

type addNotificationRequest struct {
	Type           string `json:"type" validate:"required,notification_type"`
	Title          string `json:"title" validate:"required"`
	Message        string `json:"message" validate:"required"`
	Role           string `json:"role" validate:"required,user_role"`
	ActionRequired bool   `json:"action_required"`
	ActionURL      string `json:"action_url"`
}

func (h *NotificationHandler) AddNotification(c *gin.Context) {
	var req addNotificationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.Notify(
		c.Request.Context(),
		domainNotification.Type(req.Type),
		domainUser.Role(req.Role),
		req.Title, req.Message,
		req.ActionRequired, req.ActionURL,
	)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Notification added successfully", nil)
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	role := domainUser.Role(c.MustGet("role").(string))

	result, err := h.service.ListForRole(c.Request.Context(), role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", result)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) ClearAll(c *gin.Context) {
	if err := h.service.ClearAll(c.Request.Context()); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications cleared successfully", nil)
}
