package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babylon/pkg/models"
)

func newTestRouter(root string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(newTestEngine(root)).RegisterRoutes(router.Group("/search"))
	return router
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(fixtureArchive(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?type=song&dateFrom=2024-01-01&dateTo=2024-12-31", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []models.WorkRecord `json:"results"`
		Total   int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Alpha_Creator/later_song", resp.Results[0].ID)
}

func TestSearchEndpointEmptyResultIsNotAnError(t *testing.T) {
	router := newTestRouter(fixtureArchive(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?q=no-such-thing-anywhere", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": [], "total": 0}`, w.Body.String())
}

func TestSearchEndpointScanFailure(t *testing.T) {
	router := newTestRouter(filepath.Join(t.TempDir(), "missing"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
