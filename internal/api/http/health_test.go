package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]struct {
		pinger Pinger
		want   string
	}{
		"no pinger": {nil, "unknown"},
		"up":        {pingFunc(func(context.Context) error { return nil }), "up"},
		"down":      {pingFunc(func(context.Context) error { return errors.New("refused") }), "down"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler("portfolio-api", "1.2.3", "local", "redis", tc.pinger).RegisterRoutes(r)

			for _, path := range []string{"/health", "/healthz"} {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
				require.Equal(t, http.StatusOK, w.Code)

				var body HealthResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "healthy", body.Status)
				assert.Equal(t, "1.2.3", body.Version)
				assert.Equal(t, tc.want, body.StoreUp)
			}
		})
	}
}
