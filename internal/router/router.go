package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/citasmedicas/booking-api/internal/handler"
	authHandler "github.com/citasmedicas/booking-api/internal/handler/auth"
	"github.com/citasmedicas/booking-api/internal/middleware"
	"github.com/citasmedicas/booking-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit rate.Limit
	RateBurst int
}

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	authH         *authHandler.Handler
	doctorH       Handler
	appointmentH  Handler
	notificationH Handler
	h             *handler.Handler
	metrics       *metrics.Metrics
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authHandler.Handler,
	doctorH Handler,
	appointmentH Handler,
	notificationH Handler,
	h *handler.Handler,
	m *metrics.Metrics,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:        engine,
		auth:          auth,
		authH:         authH,
		doctorH:       doctorH,
		appointmentH:  appointmentH,
		notificationH: notificationH,
		h:             h,
		metrics:       m,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	r.setupHealthCheck(api)

	// Public routes: registration, login and the doctor directory.
	r.authH.RegisterRoutes(api)
	r.doctorH.RegisterRoutes(api)

	// Protected routes
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.authH.RegisterProtectedRoutes(protected)
	r.appointmentH.RegisterRoutes(protected)
	r.notificationH.RegisterRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
