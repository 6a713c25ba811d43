package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/resumeinsight/backend/analysis"
	"github.com/resumeinsight/backend/auth"
	"github.com/resumeinsight/backend/config"
	_ "github.com/resumeinsight/backend/docs"
	"github.com/resumeinsight/backend/extraction"
	"github.com/resumeinsight/backend/gemini"
	"github.com/resumeinsight/backend/handlers"
	"github.com/resumeinsight/backend/mcp"
	"github.com/resumeinsight/backend/pipeline"
	"github.com/resumeinsight/backend/storage"
	"github.com/resumeinsight/backend/tools"
)

// @title ResumeInsight API
// @version 1.0
// @description Resume analysis backend: upload a PDF, DOCX or text resume, extract and validate its text, and get an ATS-style report from Gemini.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@resumeinsight.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client (users, and history unless postgres is selected)
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	var analyses storage.AnalysisStore = firestoreClient
	if cfg.HistoryBackend == config.HistoryPostgres {
		log.Println("Initializing Postgres history store...")
		pg, err := storage.NewPostgresStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Postgres store: %v", err)
		}
		defer pg.Close()
		analyses = pg
	}

	// Cloud Storage is only needed for export links
	var archive handlers.ExportArchive
	if cfg.ReportBucketName != "" {
		log.Println("Initializing Cloud Storage client...")
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
		}
		defer storageClient.Close()
		archive = storageClient
		log.Println("Cloud Storage client initialized successfully")
	} else {
		log.Println("REPORT_BUCKET_NAME not set, export links disabled")
	}

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)
	rateLimiter := auth.NewRateLimiter(cfg)

	// Initialize the generation backend
	log.Printf("Initializing Gemini %s backend...", cfg.GeminiBackend)
	generator, err := gemini.NewGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	defer generator.Close()
	log.Printf("Gemini initialized with model %s", generator.Model())

	extractor := extraction.NewExtractor(cfg)
	analyzer := analysis.NewAnalyzer(generator, cfg)
	resumePipeline := pipeline.New(extractor, analyzer, analyses)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewExtractTextTool(extractor))
	toolRegistry.Register(tools.NewValidateResumeTool())
	toolRegistry.Register(tools.NewValidateJobDescriptionTool())
	toolRegistry.Register(tools.NewAnalyzeResumeTool(analyzer))

	mcpServer := mcp.NewServer(toolRegistry, "resumeinsight", handlers.Version)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.SetupRoutes(router, handlers.Dependencies{
		Auth:        handlers.NewAuthHandler(firestoreClient, jwtService, googleAuthService),
		Resumes:     handlers.NewResumeHandler(resumePipeline, cfg.MaxUploadBytes),
		History:     handlers.NewHistoryHandler(resumePipeline, archive),
		JWT:         jwtService,
		RateLimiter: rateLimiter,
		Tools:       toolRegistry,
		MCP:         mcpServer,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
