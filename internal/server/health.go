// Package server assembles the HTTP surfaces of the two binaries.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the standalone health server endpoints. It holds no
// state and cannot fail.
type HealthHandler struct {
	ServiceName string
	Version     string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{ServiceName: serviceName, Version: version}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Satoshi Signal Bot health server is running")
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.ServiceName,
	})
}

func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// NewHealthRouter builds the health server's routes.
func NewHealthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog())

	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/api/status", h.Status)

	return router
}
