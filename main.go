package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	"clinicore/cron"
	"clinicore/database"
	appointmentRepo "clinicore/database/repository/appointment"
	patientRepo "clinicore/database/repository/patient"
	roomRepo "clinicore/database/repository/room"
	therapistRepo "clinicore/database/repository/therapist"
	therapyRepo "clinicore/database/repository/therapy"
	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/routes"
	"clinicore/services/booking"
	"clinicore/services/notification"
	"clinicore/services/recommendation"
	"clinicore/services/scheduling"
	"clinicore/services/tasks"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	therRepo := therapistRepo.NewMongoTherapistRepo()
	patRepo := patientRepo.NewMongoPatientRepo()
	thpyRepo := therapyRepo.NewMongoTherapyRepo()
	rmRepo := roomRepo.NewMongoRoomRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(patRepo, therRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	appointmentService := &booking.DefaultAppointmentService{
		Appointments:    apptRepo,
		Therapists:      therRepo,
		Patients:        patRepo,
		Therapies:       thpyRepo,
		Rooms:           rmRepo,
		Engine:          scheduling.NewDefaultSchedulingEngine(),
		NotificationSvc: notificationService,
		Reminders:       reminderScheduler,
		CacheClient:     utils.GetCacheClient(),
	}

	recommenderService := recommendation.NewDefaultTherapyRecommender(thpyRepo, patRepo)

	// background reminder delivery.
	cron.InitReminderWorker(notificationService, apptRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:        handlers.NewBookingHandler(appointmentService),
		Recommendation: handlers.NewRecommendationHandler(recommenderService),
		Therapist:      handlers.NewTherapistHandler(therRepo),
		Patient:        handlers.NewPatientHandler(patRepo),
		Therapy:        handlers.NewTherapyHandler(thpyRepo),
		Room:           handlers.NewRoomHandler(rmRepo),
	}

	limiter := middleware.NewRateLimiter(config.AppConfig.MaxRequestsPerMin)
	routes.RegisterRoutes(router, handlerBundle, limiter)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
