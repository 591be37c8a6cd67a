package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is implemented by the backing stores that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Source    string    `json:"source"`
	Store     string    `json:"store,omitempty"`
	StoreUp   string    `json:"store_status,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	source      string
	store       string
	pinger      Pinger
}

// NewHealthHandler reports source ("local" or "remote") and the backing
// store name. pinger may be nil when the store cannot be probed.
func NewHealthHandler(serviceName, version, source, store string, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		source:      source,
		store:       store,
		pinger:      pinger,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storeStatus := "unknown"
	if h.pinger != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.pinger.Ping(pingCtx); err != nil {
			storeStatus = "down"
		} else {
			storeStatus = "up"
		}
	}

	// the in-memory copy keeps serving while the mirror is down
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Source:    h.source,
		Store:     h.store,
		StoreUp:   storeStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
