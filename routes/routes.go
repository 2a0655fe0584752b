package routes

import (
	"net/http"
	"time"

	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSchedulingRoutes sets up the slot recommendation endpoints.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/scheduling")
	{
		api.POST("/recommendations", hb.Booking.GetRecommendations)
	}
}

// RegisterAppointmentRoutes sets up the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.BookAppointment)
		api.GET("/:id", hb.Booking.GetAppointment)
		api.PUT("/:id/reschedule", hb.Booking.Reschedule)
		api.PUT("/:id/status", hb.Booking.UpdateStatus)
		api.DELETE("/:id", hb.Booking.Cancel)
	}
}

// RegisterRecommendationRoutes sets up therapy recommendation and feedback.
func RegisterRecommendationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/recommendations/therapies", hb.Recommendation.RecommendTherapies)
		api.POST("/feedback", hb.Booking.RecordFeedback)
	}
}

// RegisterTherapistRoutes registers therapist management and slot lookup.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.GET("", hb.Therapist.ListActive)
		api.GET("/:id", hb.Therapist.Get)
		api.GET("/:id/slots", hb.Booking.TherapistDaySlots)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Therapist.Create)
		protected.PUT("/:id", hb.Therapist.Update)
		protected.DELETE("/:id", hb.Therapist.Delete)
	}
}

// RegisterPatientRoutes registers patient management endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Patient.Create)
		api.GET("/:id", hb.Patient.Get)
		api.PUT("/:id", hb.Patient.Update)
		api.DELETE("/:id", hb.Patient.Delete)
		api.GET("/:id/history", hb.Patient.GetHistory)
	}
}

// RegisterCatalogueRoutes registers therapy and room management endpoints.
func RegisterCatalogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	therapies := r.Group("/api/therapies")
	{
		therapies.GET("", hb.Therapy.List)
		therapies.GET("/:id", hb.Therapy.Get)

		protected := therapies.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Therapy.Create)
		protected.PUT("/:id", hb.Therapy.Update)
		protected.DELETE("/:id", hb.Therapy.Delete)
	}

	rooms := r.Group("/api/rooms")
	{
		rooms.GET("", hb.Room.List)
		rooms.GET("/:id", hb.Room.Get)

		protected := rooms.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Room.Create)
		protected.DELETE("/:id", hb.Room.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter *middleware.RateLimiter) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(limiter.Middleware())

	RegisterHealthRoute(r)
	RegisterSchedulingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterRecommendationRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterCatalogueRoutes(r, hb)
}
