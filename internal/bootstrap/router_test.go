package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklane/project-tracker-backend/config"
	"github.com/tracklane/project-tracker-backend/internal/projects/repository"
)

func TestBuildRouter_UsesInjectedRepository(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	r := BuildRouter(RouterDeps{
		ServiceName: "project-tracker-backend",
		Config: &config.Config{
			Server: config.ServerConfig{
				Port:            "8080",
				CORSOrigins:     []string{"*"},
				RateLimitPerSec: 1000,
				RateLimitBurst:  1000,
			},
		},
		Log:  zerolog.Nop(),
		Repo: repo,
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/project/", strings.NewReader(`{"name":"alpha"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The row landed in the repository we passed in, not a private stack.
	total, err := repo.Count(req.Context(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
