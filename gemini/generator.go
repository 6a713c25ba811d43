package gemini

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/resumeinsight/backend/config"
)

// GenerationConfig holds sampling parameters sent with a request
type GenerationConfig struct {
	Temperature      float32 `json:"temperature"`
	TopP             float32 `json:"topP,omitempty"`
	MaxOutputTokens  int32   `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

// Request is a single prompt for the generation service
type Request struct {
	Prompt           string
	GenerationConfig GenerationConfig
}

// Generator sends a prompt to a Gemini model and returns the raw text reply.
// Failures are returned as *utils.AppError of kind UpstreamServiceError or EmptyModelResponse.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Model() string
	Close() error
}

// NewGenerator creates the generator selected by GEMINI_BACKEND
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	log.Printf("[Gemini] Using %s backend with model %s", cfg.GeminiBackend, cfg.GeminiModel)

	switch cfg.GeminiBackend {
	case config.BackendVertex:
		return NewVertexGenerator(ctx, cfg)
	case config.BackendGenAI:
		return NewAPIKeyGenerator(ctx, cfg)
	case config.BackendREST:
		return NewRESTGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unknown gemini backend %q", cfg.GeminiBackend)
	}
}

// httpStatusFromCode maps a gRPC status code to the closest HTTP status
func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Canceled:
		return 499
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// joinParts concatenates non-empty text parts
func joinParts(parts []string) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p)
	}
	return sb.String()
}
