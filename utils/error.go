package utils

import (
	"errors"
	"net/http"

	"clinicore/models"
	"clinicore/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string      `json:"message"`
	Details string      `json:"details,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps domain errors to HTTP statuses. Conflicts include the
// blocking appointments so clients can offer alternatives.
func RespondError(c *gin.Context, err error) {
	var conflictErr *scheduling.ConflictError
	var notFoundErr *scheduling.NotFoundError
	var intervalErr *models.InvalidIntervalError

	switch {
	case errors.As(err, &conflictErr):
		GetLogger().Warn("booking conflict", zap.String("therapistId", conflictErr.TherapistID))
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Slot no longer available",
			Details: conflictErr.Error(),
			Payload: conflictErr.Conflicts,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Not found",
			Details: notFoundErr.Error(),
		})
	case errors.As(err, &intervalErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid time interval",
			Details: intervalErr.Error(),
		})
	default:
		GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal Server Error",
			Details: "An unexpected error occurred. Please try again later.",
		})
	}
	c.Abort()
}
