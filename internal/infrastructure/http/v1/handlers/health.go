package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CountsProvider reports the size of every collection.
type CountsProvider interface {
	Counts() map[string]int
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store   CountsProvider
	version string
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store CountsProvider, version string) *HealthHandler {
	return &HealthHandler{
		store:   store,
		version: version,
		started: time.Now(),
	}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// The store lives in process, so readiness only needs it wired.
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"store": "unavailable",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"store": "healthy",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	info := gin.H{
		"app":            "shopadmin",
		"version":        h.version,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}
	if h.store != nil {
		info["collections"] = h.store.Counts()
	}

	c.JSON(http.StatusOK, info)
}
