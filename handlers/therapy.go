package handlers

import (
	"net/http"

	therapyRepo "clinicore/database/repository/therapy"
	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TherapyHandler exposes the treatment catalogue.
type TherapyHandler struct {
	Repo therapyRepo.TherapyRepository
}

func NewTherapyHandler(repo therapyRepo.TherapyRepository) *TherapyHandler {
	return &TherapyHandler{Repo: repo}
}

func (h *TherapyHandler) Create(c *gin.Context) {
	var therapy models.TherapyProfile
	if err := c.ShouldBindJSON(&therapy); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if therapy.ID == "" {
		therapy.ID = uuid.New().String()
	}
	if therapy.DurationMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "durationMinutes must be positive")
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &therapy); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, therapy)
}

func (h *TherapyHandler) Get(c *gin.Context) {
	therapy, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, therapy)
}

func (h *TherapyHandler) Update(c *gin.Context) {
	var therapy models.TherapyProfile
	if err := c.ShouldBindJSON(&therapy); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	therapy.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), &therapy); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, therapy)
}

func (h *TherapyHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TherapyHandler) List(c *gin.Context) {
	var (
		therapies []models.TherapyProfile
		err       error
	)
	if category := c.Query("category"); category != "" {
		therapies, err = h.Repo.ListByCategory(c.Request.Context(), category)
	} else {
		therapies, err = h.Repo.ListAll(c.Request.Context())
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapies": therapies})
}
