package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citasmedicas/booking-api/internal/handler"
	"github.com/citasmedicas/booking-api/internal/middleware"
	"github.com/citasmedicas/booking-api/internal/model"
	"github.com/citasmedicas/booking-api/internal/service/appointment"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.svc.CreateAppointment(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

// ListAppointments returns the caller's appointments; ?scope=upcoming|past
// selects a partition, anything else returns all of them.
func (h *Handler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	var (
		appointments []*model.Appointment
		err          error
	)
	switch c.Query("scope") {
	case "upcoming":
		appointments, err = h.svc.ListUpcomingAppointments(ctx, userID)
	case "past":
		appointments, err = h.svc.ListPastAppointments(ctx, userID)
	default:
		appointments, err = h.svc.ListAllAppointments(ctx, userID)
	}
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appointment, err := h.svc.GetAppointment(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.svc.UpdateAppointment(c.Request.Context(), middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	if err := h.svc.CancelAppointment(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
