package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event-calendar/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Event Calendar web client"
	HealthVersion = "1.0.0"
	ServiceName   = "event-calendar"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the server is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Server is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the last backend probe. Without a probe the server is
// ready as soon as it is up.
// @Summary Readiness Check
// @Description Check if the events backend answered the last probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Ready"
// @Failure 503 {object} response.Resp "Backend unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.probe == nil {
		response.OK(c, gin.H{
			"status":  "ready",
			"version": HealthVersion,
			"service": ServiceName,
		})
		return
	}

	st := srv.probe.Status()
	if !st.Ready {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Backend not ready",
			Data:      st,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
		"backend": st,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the server is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Server is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
