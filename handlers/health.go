package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/tools"
)

// Version is reported by the health endpoint and the MCP handshake
const Version = "1.0.0"

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetTools returns the available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tools"
// @Router /tools [get]
func GetTools(registry *tools.ToolRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tools": registry.GetToolDefinitions(),
		})
	}
}
