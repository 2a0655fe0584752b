package handlers

import (
	"net/http"
	"time"

	therapistRepo "clinicore/database/repository/therapist"
	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TherapistHandler exposes therapist CRUD.
type TherapistHandler struct {
	Repo therapistRepo.TherapistRepository
}

func NewTherapistHandler(repo therapistRepo.TherapistRepository) *TherapistHandler {
	return &TherapistHandler{Repo: repo}
}

func (h *TherapistHandler) Create(c *gin.Context) {
	var therapist models.Therapist
	if err := c.ShouldBindJSON(&therapist); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if therapist.ID == "" {
		therapist.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	therapist.CreatedAt = now
	therapist.UpdatedAt = now

	if err := h.Repo.Create(c.Request.Context(), &therapist); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, therapist)
}

func (h *TherapistHandler) Get(c *gin.Context) {
	therapist, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, therapist)
}

func (h *TherapistHandler) Update(c *gin.Context) {
	var therapist models.Therapist
	if err := c.ShouldBindJSON(&therapist); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	therapist.ID = c.Param("id")
	therapist.UpdatedAt = time.Now().UTC()

	if err := h.Repo.Update(c.Request.Context(), &therapist); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, therapist)
}

func (h *TherapistHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TherapistHandler) ListActive(c *gin.Context) {
	therapists, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapists": therapists})
}
