package config

import (
	"os"
	"strconv"
	"strings"
)

// Generation backends
const (
	BackendVertex = "vertex"
	BackendGenAI  = "genai"
	BackendREST   = "rest"
)

// History backends
const (
	HistoryFirestore = "firestore"
	HistoryPostgres  = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string
	Location  string

	// Server
	Port           string
	Debug          bool
	AllowedOrigins []string

	// Gemini
	GeminiBackend         string
	GeminiModel           string
	GeminiAPIKey          string
	GeminiEndpoint        string
	GeminiTemperature     float32
	GeminiMaxOutputTokens int32

	// Timeouts
	HTTPTimeoutSeconds int

	// Upload and extraction limits
	MaxUploadBytes    int64
	ExtractorMaxBytes int64
	MinTextLength     int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	GoogleClientID string

	// Rate limiting for analysis endpoints
	AnalysisRatePerMinute int
	AnalysisRateBurst     int

	// Persistence
	HistoryBackend string
	DatabaseURL    string

	// Cloud Storage
	ReportBucketName string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// Server
		Port:           getEnv("PORT", "8080"),
		Debug:          getEnvBool("DEBUG", false),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		// Gemini
		GeminiBackend:         strings.ToLower(getEnv("GEMINI_BACKEND", BackendVertex)),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiEndpoint:        getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiTemperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.3),
		GeminiMaxOutputTokens: int32(getEnvInt("GEMINI_MAX_OUTPUT_TOKENS", 8192)),

		// Timeouts
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 60),

		// Limits
		MaxUploadBytes:    getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		ExtractorMaxBytes: getEnvInt64("EXTRACTOR_MAX_BYTES", 5<<20),
		MinTextLength:     getEnvInt("MIN_TEXT_LENGTH", 50),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		// Rate limiting
		AnalysisRatePerMinute: getEnvInt("ANALYSIS_RATE_PER_MINUTE", 10),
		AnalysisRateBurst:     getEnvInt("ANALYSIS_RATE_BURST", 3),

		// Persistence
		HistoryBackend: strings.ToLower(getEnv("HISTORY_BACKEND", HistoryFirestore)),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		// Cloud Storage
		ReportBucketName: getEnv("REPORT_BUCKET_NAME", ""),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// Firestore holds users in every deployment
	if c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Firestore"}
	}

	switch c.GeminiBackend {
	case BackendVertex:
		if c.Location == "" {
			return &ConfigError{Field: "LOCATION", Message: "LOCATION is required for Vertex AI"}
		}
	case BackendGenAI, BackendREST:
		if c.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required for the " + c.GeminiBackend + " backend"}
		}
	default:
		return &ConfigError{Field: "GEMINI_BACKEND", Message: "GEMINI_BACKEND must be one of vertex, genai, rest"}
	}

	switch c.HistoryBackend {
	case HistoryFirestore:
	case HistoryPostgres:
		if c.DatabaseURL == "" {
			return &ConfigError{Field: "DATABASE_URL", Message: "DATABASE_URL is required for the postgres history backend"}
		}
	default:
		return &ConfigError{Field: "HISTORY_BACKEND", Message: "HISTORY_BACKEND must be firestore or postgres"}
	}

	if c.ExtractorMaxBytes <= 0 {
		return &ConfigError{Field: "EXTRACTOR_MAX_BYTES", Message: "EXTRACTOR_MAX_BYTES must be positive"}
	}
	if c.MaxUploadBytes < c.ExtractorMaxBytes {
		return &ConfigError{Field: "MAX_UPLOAD_BYTES", Message: "MAX_UPLOAD_BYTES must not be smaller than EXTRACTOR_MAX_BYTES"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(parsed)
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
