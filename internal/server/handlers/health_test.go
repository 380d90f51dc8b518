package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestReadinessReflectsAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for configured, want := range map[bool]string{true: "ok", false: "degraded"} {
		r := gin.New()
		r.GET("/health/ready", NewHealthHandler(zaptest.NewLogger(t), configured).Readiness)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, want, resp.Status)
	}
}
