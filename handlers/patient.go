package handlers

import (
	"net/http"

	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatientHandler exposes patient CRUD and treatment history.
type PatientHandler struct {
	Repo patientRepo.PatientRepository
}

func NewPatientHandler(repo patientRepo.PatientRepository) *PatientHandler {
	return &PatientHandler{Repo: repo}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}

	if err := h.Repo.Create(c.Request.Context(), &patient); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) Get(c *gin.Context) {
	patient, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	patient.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), &patient); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PatientHandler) GetHistory(c *gin.Context) {
	patientID := c.Param("id")
	history, err := h.Repo.GetHistory(c.Request.Context(), patientID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patientId": patientID, "history": history})
}
