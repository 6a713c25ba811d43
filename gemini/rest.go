package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/utils"
)

// maxErrorBody bounds how much of a failed response is kept for logs
const maxErrorBody = 8 << 10

// RESTGenerator calls the generateContent endpoint over plain HTTPS
type RESTGenerator struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	modelName  string
}

// NewRESTGenerator creates a REST generator
func NewRESTGenerator(cfg *config.Config) *RESTGenerator {
	return &RESTGenerator{
		httpClient: utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second),
		endpoint:   strings.TrimRight(cfg.GeminiEndpoint, "/"),
		apiKey:     cfg.GeminiAPIKey,
		modelName:  cfg.GeminiModel,
	}
}

// Model returns the model name
func (g *RESTGenerator) Model() string {
	return g.modelName
}

// Close releases idle connections
func (g *RESTGenerator) Close() error {
	g.httpClient.CloseIdleConnections()
	return nil
}

type restPart struct {
	Text string `json:"text"`
}

type restContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []restPart `json:"parts"`
}

type restRequest struct {
	Contents         []restContent    `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type restResponse struct {
	Candidates []struct {
		Content      restContent `json:"content"`
		FinishReason string      `json:"finishReason"`
	} `json:"candidates"`
}

// Generate posts the prompt and reads candidates[0].content.parts
func (g *RESTGenerator) Generate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(restRequest{
		Contents:         []restContent{{Role: "user", Parts: []restPart{{Text: req.Prompt}}}},
		GenerationConfig: req.GenerationConfig,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.endpoint, g.modelName)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", utils.NewUpstreamServiceError(0, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", utils.NewUpstreamServiceError(resp.StatusCode, string(errBody), nil)
	}

	var parsed restResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", utils.NewUpstreamServiceError(resp.StatusCode, "invalid response envelope", err)
	}

	if len(parsed.Candidates) == 0 {
		return "", utils.NewEmptyModelResponse()
	}
	var parts []string
	for _, p := range parsed.Candidates[0].Content.Parts {
		parts = append(parts, p.Text)
	}
	text := joinParts(parts)
	if strings.TrimSpace(text) == "" {
		return "", utils.NewEmptyModelResponse()
	}
	return text, nil
}
