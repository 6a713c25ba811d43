package gemini

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/status"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/utils"
)

// VertexGenerator calls Gemini through Vertex AI
type VertexGenerator struct {
	client    *genai.Client
	projectID string
	location  string
	modelName string
}

// NewVertexGenerator creates a Vertex AI generator
func NewVertexGenerator(ctx context.Context, cfg *config.Config) (*VertexGenerator, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &VertexGenerator{
		client:    client,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Model returns the model name
func (g *VertexGenerator) Model() string {
	return g.modelName
}

// Close closes the Vertex AI client
func (g *VertexGenerator) Close() error {
	return g.client.Close()
}

// Generate sends the prompt and returns the concatenated text parts
func (g *VertexGenerator) Generate(ctx context.Context, req Request) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(req.GenerationConfig.Temperature)
	if req.GenerationConfig.TopP > 0 {
		model.SetTopP(req.GenerationConfig.TopP)
	}
	if req.GenerationConfig.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(req.GenerationConfig.MaxOutputTokens)
	}
	model.ResponseMIMEType = req.GenerationConfig.ResponseMIMEType

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", vertexError(err)
	}

	text := extractText(resp)
	if text == "" {
		return "", utils.NewEmptyModelResponse()
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			parts = append(parts, string(textPart))
		}
	}
	return joinParts(parts)
}

// vertexError converts a Vertex AI failure into an upstream error with an HTTP status
func vertexError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		e := utils.NewEmptyModelResponse()
		e.Detail = blocked.Error()
		e.Cause = err
		return e
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return utils.NewUpstreamServiceError(apiErr.Code, apiErr.Body, err)
	}

	if st, ok := status.FromError(err); ok {
		return utils.NewUpstreamServiceError(httpStatusFromCode(st.Code()), st.Message(), err)
	}

	return utils.NewUpstreamServiceError(0, err.Error(), err)
}
