package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/utils"
)

// APIKeyGenerator calls the Gemini API with an API key
type APIKeyGenerator struct {
	client    *genai.Client
	modelName string
}

// NewAPIKeyGenerator creates a Gemini API generator
func NewAPIKeyGenerator(ctx context.Context, cfg *config.Config) (*APIKeyGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &APIKeyGenerator{
		client:    client,
		modelName: cfg.GeminiModel,
	}, nil
}

// Model returns the model name
func (g *APIKeyGenerator) Model() string {
	return g.modelName
}

// Close is a no-op, the client holds no connections of its own
func (g *APIKeyGenerator) Close() error {
	return nil
}

// Generate sends the prompt and returns the response text
func (g *APIKeyGenerator) Generate(ctx context.Context, req Request) (string, error) {
	temperature := req.GenerationConfig.Temperature
	genCfg := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  req.GenerationConfig.MaxOutputTokens,
		ResponseMIMEType: req.GenerationConfig.ResponseMIMEType,
	}
	if req.GenerationConfig.TopP > 0 {
		topP := req.GenerationConfig.TopP
		genCfg.TopP = &topP
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.Prompt), genCfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", utils.NewUpstreamServiceError(apiErr.Code, apiErr.Message, err)
		}
		return "", utils.NewUpstreamServiceError(0, err.Error(), err)
	}

	if resp == nil {
		return "", utils.NewEmptyModelResponse()
	}
	text := resp.Text()
	if text == "" {
		return "", utils.NewEmptyModelResponse()
	}
	return text, nil
}
