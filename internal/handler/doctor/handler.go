package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citasmedicas/booking-api/internal/handler"
	"github.com/citasmedicas/booking-api/internal/service/doctor"
)

type Handler struct {
	svc *doctor.Service
}

func NewHandler(svc *doctor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/search", h.SearchDoctors)
		doctors.GET("/featured", h.ListFeatured)
		doctors.GET("/available", h.ListAvailable)
		doctors.GET("/telemedicine", h.ListTelemedicine)
		doctors.GET("/:id", h.GetDoctor)
	}
}

// ListDoctors returns the directory, optionally narrowed by specialty or
// location substring filters.
func (h *Handler) ListDoctors(c *gin.Context) {
	ctx := c.Request.Context()

	if specialty := c.Query("specialty"); specialty != "" {
		doctors, err := h.svc.ListBySpecialty(ctx, specialty)
		if err != nil {
			handler.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
		return
	}

	if location := c.Query("location"); location != "" {
		doctors, err := h.svc.ListByLocation(ctx, location)
		if err != nil {
			handler.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
		return
	}

	doctors, err := h.svc.ListDoctors(ctx)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.svc.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) SearchDoctors(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("query parameter q is required"))
		return
	}

	doctors, err := h.svc.SearchDoctors(c.Request.Context(), query)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) ListFeatured(c *gin.Context) {
	doctors, err := h.svc.ListFeaturedDoctors(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) ListAvailable(c *gin.Context) {
	doctors, err := h.svc.ListAvailableDoctors(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) ListTelemedicine(c *gin.Context) {
	doctors, err := h.svc.ListTelemedicineDoctors(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}
