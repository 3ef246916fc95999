package httpserver

import (
	"net/http"

	"brandpulse-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "BrandPulse API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "brandpulse-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"llm":     srv.llmStatus(),
	})
}

// readyCheck reports not ready when an enabled dependency is unreachable.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	deps := gin.H{"redis": "disabled", "kafka": "disabled"}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Redis connection failed",
				"error":   err.Error(),
			})
			return
		}
		deps["redis"] = "connected"
	}
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Kafka producer unavailable",
				"error":   err.Error(),
			})
			return
		}
		deps["kafka"] = "connected"
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"redis":   deps["redis"],
		"kafka":   deps["kafka"],
		"llm":     srv.llmStatus(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func (srv *HTTPServer) llmStatus() string {
	if srv.llm == nil {
		return "fallback"
	}
	return srv.llm.Name()
}
