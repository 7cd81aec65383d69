package providers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionMiddleware_GzipsJSON(t *testing.T) {
	body := `{"results":[` + strings.Repeat(`{"brand":"Nike"},`, 100) + `{}]}`
	handler, err := CompressionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=nike", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Less(t, rr.Body.Len(), len(body))
}

func TestCompressionMiddleware_SkipsPNG(t *testing.T) {
	payload := make([]byte, 4096)
	handler, err := CompressionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/logo", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, len(payload), rr.Body.Len())
}
