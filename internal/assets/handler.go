package assets

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{Resolver: resolver}
}

// RegisterRoutes expects the /asset group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.get) // GET /asset?path=...
}

func (h *Handler) get(c *gin.Context) {
	rel := c.Query("path")
	if rel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path"})
		return
	}

	b, contentType, err := h.Resolver.Resolve(rel)
	if err != nil {
		switch {
		case errors.Is(err, ErrOutsideArchive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		case errors.Is(err, os.ErrNotExist):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		}
		return
	}

	c.Data(http.StatusOK, contentType, b)
}
