package handlers

import (
	"net/http"

	roomRepo "clinicore/database/repository/room"
	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoomHandler exposes treatment room CRUD.
type RoomHandler struct {
	Repo roomRepo.RoomRepository
}

func NewRoomHandler(repo roomRepo.RoomRepository) *RoomHandler {
	return &RoomHandler{Repo: repo}
}

func (h *RoomHandler) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if room.ID == "" {
		room.ID = uuid.New().String()
	}

	if err := h.Repo.Create(c.Request.Context(), &room); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) List(c *gin.Context) {
	var (
		rooms []models.Room
		err   error
	)
	if roomType := c.Query("type"); roomType != "" {
		rooms, err = h.Repo.ListByType(c.Request.Context(), roomType)
	} else {
		rooms, err = h.Repo.ListBookable(c.Request.Context())
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
