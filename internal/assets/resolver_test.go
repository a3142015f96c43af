package assets

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "creators", "C", "Music", "Singles", "w")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.png"), []byte("png-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.flac"), []byte("flac-bytes"), 0o644))
	return root
}

func TestResolveReturnsBytesAndContentType(t *testing.T) {
	r, err := NewResolver(fixtureRoot(t))
	require.NoError(t, err)

	b, ct, err := r.Resolve("creators/C/Music/Singles/w/cover.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), b)
	assert.Equal(t, "image/png", ct)

	b, ct, err = r.Resolve("creators/C/Music/Singles/w/song.flac")
	require.NoError(t, err)
	assert.Equal(t, []byte("flac-bytes"), b)
	assert.Equal(t, "application/octet-stream", ct)
}

func TestResolveRejectsTraversal(t *testing.T) {
	r, err := NewResolver(fixtureRoot(t))
	require.NoError(t, err)

	for _, rel := range []string{
		"../../../etc/passwd",
		"creators/../../outside.txt",
		"..",
	} {
		_, _, err := r.Resolve(rel)
		assert.ErrorIs(t, err, ErrOutsideArchive, "path %q", rel)
	}

	// dot segments that stay inside the root are fine
	_, _, err = r.Resolve("creators/C/../C/Music/Singles/w/cover.png")
	assert.NoError(t, err)
}

func TestResolveMissingFile(t *testing.T) {
	r, err := NewResolver(fixtureRoot(t))
	require.NoError(t, err)

	_, _, err = r.Resolve("creators/C/Music/Singles/w/nope.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeFor("a/b.PNG"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("x.jpg"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("x.jpeg"))
	assert.Equal(t, "image/gif", ContentTypeFor("x.gif"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("x.webm"))
}

func newTestRouter(t *testing.T, root string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	resolver, err := NewResolver(root)
	require.NoError(t, err)
	router := gin.New()
	NewHandler(resolver).RegisterRoutes(router.Group("/asset"))
	return router
}

func TestAssetEndpoint(t *testing.T) {
	router := newTestRouter(t, fixtureRoot(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/asset?path="+url.QueryEscape("creators/C/Music/Singles/w/cover.png"), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestAssetEndpointRejections(t *testing.T) {
	router := newTestRouter(t, fixtureRoot(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/asset", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/asset?path="+url.QueryEscape("../../../etc/passwd"), nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/asset?path="+url.QueryEscape("creators/C/nope.png"), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
