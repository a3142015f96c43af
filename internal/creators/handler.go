package creators

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Aggregator *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{Aggregator: agg}
}

// RegisterRoutes expects the /creators group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list) // GET /creators
}

func (h *Handler) list(c *gin.Context) {
	summaries, err := h.Aggregator.Summaries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read archive"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"creators": summaries})
}
