package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/auth"
	"github.com/resumeinsight/backend/mcp"
	"github.com/resumeinsight/backend/tools"
)

// Dependencies holds everything the route table needs
type Dependencies struct {
	Auth        *AuthHandler
	Resumes     *ResumeHandler
	History     *HistoryHandler
	JWT         *auth.JWTService
	RateLimiter *auth.RateLimiter
	Tools       *tools.ToolRegistry
	MCP         *mcp.Server
}

// SetupRoutes registers the health check and all /api routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", deps.Auth.Register)
			authGroup.POST("/login", deps.Auth.Login)
			authGroup.POST("/google", deps.Auth.GoogleLogin)
		}

		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(deps.JWT))
		{
			authProtected.GET("/profile", deps.Auth.GetProfile)
			authProtected.PUT("/profile", deps.Auth.UpdateProfile)
			authProtected.POST("/refresh", deps.Auth.RefreshToken)
		}

		// Analysis endpoints call the model, so they are rate limited per user
		limited := api.Group("")
		limited.Use(auth.AuthMiddleware(deps.JWT), auth.RateLimitMiddleware(deps.RateLimiter))
		{
			limited.POST("/resumes", deps.Resumes.Upload)
			limited.POST("/resumes/:id/analyze", deps.Resumes.Analyze)
			limited.POST("/analyze", deps.Resumes.UploadAndAnalyze)
		}

		history := api.Group("/analyses")
		history.Use(auth.AuthMiddleware(deps.JWT))
		{
			history.GET("", deps.History.List)
			history.GET("/export", deps.History.Export)
			history.GET("/:id", deps.History.Get)
			history.DELETE("/:id", deps.History.Delete)
		}

		validate := api.Group("/validate")
		{
			validate.POST("/resume", ValidateResume)
			validate.POST("/job-description", ValidateJobDescription)
		}

		// Tools introspection endpoint
		api.GET("/tools", GetTools(deps.Tools))

		// MCP endpoints for external AI agents. analyze_resume calls the model,
		// so agents share the analysis rate limit, keyed by IP when anonymous.
		agents := api.Group("")
		agents.Use(auth.OptionalAuthMiddleware(deps.JWT), auth.RateLimitMiddleware(deps.RateLimiter))
		deps.MCP.RegisterRoutes(agents)
	}
}
