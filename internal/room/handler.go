package room

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moviematch/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/createRoom", h.createRoom)
	rg.GET("/room", h.getRoom)
	rg.POST("/savePreferences", h.savePreferences)
}

func (h *Handler) createRoom(c *gin.Context) {
	room, err := h.Repo.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": room.Code})
}

func (h *Handler) getRoom(c *gin.Context) {
	code := strings.ToUpper(c.Query("roomCode"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
		return
	}

	room, err := h.Repo.GetByCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

type savePreferencesRequest struct {
	RoomCode   string  `json:"roomCode"`
	Genre      string  `json:"genre"`
	Language   string  `json:"language"`
	MaxRuntime int     `json:"max_runtime"`
	MinRating  float64 `json:"min_rating"`
}

func (h *Handler) savePreferences(c *gin.Context) {
	var req savePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.RoomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
		return
	}

	room, err := h.Repo.GetByCode(c.Request.Context(), req.RoomCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	pref := models.Preference{
		Genre:      req.Genre,
		Language:   req.Language,
		MaxRuntime: req.MaxRuntime,
		MinRating:  req.MinRating,
	}
	if err := h.Repo.SavePreference(c.Request.Context(), room.ID, pref); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
