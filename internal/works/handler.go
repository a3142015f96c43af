package works

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"babylon/internal/archive"
)

type Handler struct {
	Normalizer *Normalizer
}

func NewHandler(normalizer *Normalizer) *Handler {
	return &Handler{Normalizer: normalizer}
}

// RegisterRoutes expects the /creators group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/works", h.listWorks) // GET /creators/:id/works
}

func (h *Handler) listWorks(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing creator id"})
		return
	}

	records, err := h.Normalizer.NormalizeAll(id)
	if err != nil {
		if errors.Is(err, archive.ErrCreatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "creator not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read works"})
		return
	}

	c.JSON(http.StatusOK, records)
}
