package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/citasmedicas/booking-api/internal/config"
	"github.com/citasmedicas/booking-api/internal/handler"
	appointmentHandler "github.com/citasmedicas/booking-api/internal/handler/appointment"
	authHandler "github.com/citasmedicas/booking-api/internal/handler/auth"
	doctorHandler "github.com/citasmedicas/booking-api/internal/handler/doctor"
	notificationHandler "github.com/citasmedicas/booking-api/internal/handler/notification"
	"github.com/citasmedicas/booking-api/internal/middleware"
	"github.com/citasmedicas/booking-api/internal/repository/sqlite"
	"github.com/citasmedicas/booking-api/internal/router"
	"github.com/citasmedicas/booking-api/internal/seed"
	appointmentService "github.com/citasmedicas/booking-api/internal/service/appointment"
	authService "github.com/citasmedicas/booking-api/internal/service/auth"
	doctorService "github.com/citasmedicas/booking-api/internal/service/doctor"
	notificationService "github.com/citasmedicas/booking-api/internal/service/notification"
	"github.com/citasmedicas/booking-api/pkg/auth"
	"github.com/citasmedicas/booking-api/pkg/logger"
	"github.com/citasmedicas/booking-api/pkg/metrics"
	"github.com/citasmedicas/booking-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Logging.Level)

	db, err := sqlite.NewDB(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	m := metrics.NewMetrics("booking_api")

	// Repositories
	userRepo := sqlite.NewUserRepository(db, sqlite.WithMetrics(m))
	doctorRepo := sqlite.NewDoctorRepository(db, sqlite.WithMetrics(m))
	appointmentRepo := sqlite.NewAppointmentRepository(db, sqlite.WithMetrics(m))
	reminderRepo := sqlite.NewReminderRepository(db, sqlite.WithMetrics(m))
	sessions := sqlite.NewSessionStore(db)

	// Seed the doctor catalog before accepting traffic.
	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		count, err := seed.NewSeeder(doctorRepo).Run(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed doctor catalog")
		}
		m.SeededDoctors.Set(float64(count))
		log.Info().Int("doctors", count).Msg("doctor catalog ready")
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewSaltedHasher()
	authSvc := authService.NewService(userRepo, sessions, hasher, jwtSvc)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, reminderRepo, sessions)
	notificationSvc := notificationService.NewService(appointmentRepo, reminderRepo)

	// Handlers
	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	notificationH := notificationHandler.NewHandler(notificationSvc)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	r := router.NewRouter(
		authMiddleware,
		authH,
		doctorH,
		appointmentH,
		notificationH,
		h,
		m,
		router.Config{
			RateLimit: rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst: cfg.RateLimit.Burst,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
