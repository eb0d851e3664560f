package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citasmedicas/booking-api/internal/handler"
	"github.com/citasmedicas/booking-api/internal/middleware"
	"github.com/citasmedicas/booking-api/internal/service/notification"
)

type Handler struct {
	svc *notification.Service
}

func NewHandler(svc *notification.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.POST("/:id/read", h.MarkAsRead)
	}
	reminders := r.Group("/reminders")
	{
		reminders.GET("", h.ListReminders)
		reminders.DELETE("/:id", h.DeleteReminder)
	}
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.svc.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"unread": count}))
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	h.svc.MarkAsRead(c.Param("id"))
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListReminders(c *gin.Context) {
	reminders, err := h.svc.ListReminders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(reminders))
}

func (h *Handler) DeleteReminder(c *gin.Context) {
	if err := h.svc.DeleteReminder(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
