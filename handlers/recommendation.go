package handlers

import (
	"net/http"

	"clinicore/services/recommendation"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler exposes therapy recommendations.
type RecommendationHandler struct {
	Svc recommendation.TherapyRecommender
}

func NewRecommendationHandler(svc recommendation.TherapyRecommender) *RecommendationHandler {
	return &RecommendationHandler{Svc: svc}
}

// RecommendTherapies ranks treatments for a patient.
func (h *RecommendationHandler) RecommendTherapies(c *gin.Context) {
	var input struct {
		PatientID string `json:"patientId" binding:"required"`
		Limit     int    `json:"limit,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	recs, err := h.Svc.RecommendTherapies(c.Request.Context(), input.PatientID, input.Limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patientId": input.PatientID, "recommendations": recs})
}
