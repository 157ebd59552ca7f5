package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	name    string
	version string
	redis   Pinger
}

func NewHealthHandler(name, version string, redis Pinger) *HealthHandler {
	return &HealthHandler{name: name, version: version, redis: redis}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.name,
		"version": h.version,
		"status":  "running",
	})
}

// Health always answers 200: the cache is advisory, so a Redis outage
// degrades the service without taking it down.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, redis := "healthy", "connected"
	if h.redis == nil || h.redis.Ping(ctx) != nil {
		status, redis = "degraded", "disconnected"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "redis": redis})
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
