package handlers

import (
	"net/http"
	"time"

	"clinicore/models"
	"clinicore/services/booking"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes slot recommendation and the appointment lifecycle.
type BookingHandler struct {
	Svc booking.AppointmentService
}

func NewBookingHandler(svc booking.AppointmentService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetRecommendations ranks available slots for a therapy over the requested days.
func (h *BookingHandler) GetRecommendations(c *gin.Context) {
	var req models.SlotRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.GetRecommendedSlots(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BookAppointment commits a chosen slot.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.BookAppointment(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	getLogger(c).Info("appointment created", zap.String("appointmentId", appt.ID))
	c.JSON(http.StatusCreated, appt)
}

// GetAppointment fetches one appointment by ID.
func (h *BookingHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Reschedule moves an appointment to a new interval.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Start time.Time `json:"start" binding:"required"`
		End   time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.RescheduleAppointment(c.Request.Context(), id, input.Start, input.End)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatus advances the appointment lifecycle.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateAppointmentStatus(c.Request.Context(), id, input.Status); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}

// Cancel cancels an active appointment.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.CancelAppointment(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": models.StatusCancelled})
}

// TherapistDaySlots lists the free intervals a therapist has on one day.
func (h *BookingHandler) TherapistDaySlots(c *gin.Context) {
	therapistID := c.Param("id")
	therapyID := c.Query("therapyId")
	if therapyID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "therapyId query parameter is required")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter must be YYYY-MM-DD")
		return
	}

	slots, err := h.Svc.GetTherapistDaySlots(c.Request.Context(), therapistID, therapyID, date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapistId": therapistID, "date": c.Query("date"), "slots": slots})
}

// RecordFeedback stores a satisfaction rating for a completed session.
func (h *BookingHandler) RecordFeedback(c *gin.Context) {
	var feedback models.SessionFeedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.RecordFeedback(c.Request.Context(), &feedback); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}
