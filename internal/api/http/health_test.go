package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_WithoutBackends(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHealthHandler("project-tracker-backend", "1.2.3", nil, nil).RegisterRoutes(r)

	for _, path := range []string{"/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "project-tracker-backend", body.Service)
		assert.Equal(t, "1.2.3", body.Version)
		assert.Equal(t, "disabled", body.DB)
		assert.Equal(t, "disabled", body.Cache)
	}
}
