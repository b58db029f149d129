package static_test

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/static"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{"index.html", "app.js", "styles.css"} {
		_, err := fs.Stat(static.FS(), name)
		assert.NoError(t, err, name)
	}
}

func TestRootRedirects(t *testing.T) {
	rec := httptest.NewRecorder()
	static.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, static.IndexPath, rec.Header().Get("Location"))
}

func TestHandlerServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	static.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mergington High School")
}

func TestHandlerServesScript(t *testing.T) {
	rec := httptest.NewRecorder()
	static.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/activities")
}

func TestHandlerMissingFile(t *testing.T) {
	rec := httptest.NewRecorder()
	static.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/nope.txt", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
