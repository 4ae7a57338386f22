package match

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Orchestrator *Orchestrator
}

func NewHandler(o *Orchestrator) *Handler {
	return &Handler{Orchestrator: o}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/match", h.match)
}

func (h *Handler) match(c *gin.Context) {
	code := strings.ToUpper(c.Query("roomCode"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
		return
	}

	res, err := h.Orchestrator.Match(c.Request.Context(), code)
	if err != nil {
		// Match only fails with ErrRoomNotFound; everything provider-side
		// degrades to the fallback catalog instead.
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	if res.Fallback {
		c.JSON(http.StatusOK, gin.H{"movies": res.Movies})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"movies":          res.Movies,
		"preferenceCount": res.PreferenceCount,
	})
}
