package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/gemini"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/utils"
)

// Analyzer sends resume text to the generation service and normalizes the reply
type Analyzer struct {
	generator gemini.Generator
	genConfig gemini.GenerationConfig
	now       func() time.Time
}

// Result is the outcome of one analysis call
type Result struct {
	Analysis *models.NormalizedAnalysis
	Resume   *models.ResumeProfile
	Raw      map[string]any
}

// NewAnalyzer creates an analyzer
func NewAnalyzer(generator gemini.Generator, cfg *config.Config) *Analyzer {
	return &Analyzer{
		generator: generator,
		genConfig: gemini.GenerationConfig{
			Temperature:      cfg.GeminiTemperature,
			TopP:             0.8,
			MaxOutputTokens:  cfg.GeminiMaxOutputTokens,
			ResponseMIMEType: "application/json",
		},
		now: time.Now,
	}
}

// Model returns the model name used for analysis
func (a *Analyzer) Model() string {
	return a.generator.Model()
}

// RunAnalysis analyzes cleaned resume text for a target role
func (a *Analyzer) RunAnalysis(ctx context.Context, cleanedText, targetRole string) (*models.NormalizedAnalysis, error) {
	result, err := a.Analyze(ctx, cleanedText, targetRole, "")
	if err != nil {
		return nil, err
	}
	return result.Analysis, nil
}

// Analyze runs one generation call. A reply that cannot be parsed fails with
// MalformedModelResponse, never with a partial report.
func (a *Analyzer) Analyze(ctx context.Context, cleanedText, targetRole, jobDescription string) (*Result, error) {
	req := BuildRequest(cleanedText, targetRole, jobDescription, a.genConfig)

	start := a.now()
	text, err := a.generator.Generate(ctx, req)
	if err != nil {
		logAppError("Generation failed", err)
		return nil, err
	}
	elapsed := a.now().Sub(start)

	raw, err := ParseResponse(text)
	if err != nil {
		logAppError("Could not parse model response", err)
		return nil, err
	}
	Stamp(raw, a.generator.Model(), elapsed, a.now())

	normalized := Normalize(raw)
	resume := ExtractResume(raw)

	log.Printf("[Analyzer] Analysis for %q done in %dms: ats=%d (%s), shape=%s",
		targetRole, elapsed.Milliseconds(), normalized.ATSScore.Score, normalized.ATSScore.Level, normalized.ResponseShape)

	return &Result{
		Analysis: &normalized,
		Resume:   resume,
		Raw:      raw,
	}, nil
}

// ExtractResume reads the structured resume fields from the model's JSON
func ExtractResume(raw map[string]any) *models.ResumeProfile {
	subset := make(map[string]any, 6)
	for _, key := range []string{"personalInfo", "summary", "skills", "experience", "education", "certifications"} {
		if v, ok := raw[key]; ok {
			subset[key] = v
		}
	}

	profile := &models.ResumeProfile{}
	data, err := json.Marshal(subset)
	if err == nil {
		if err := json.Unmarshal(data, profile); err != nil {
			// a mistyped section leaves the rest of the profile intact
			log.Printf("[Analyzer] Partial resume profile: %v", err)
		}
	}
	profile.Normalize()
	return profile
}

func logAppError(msg string, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) && appErr.Detail != "" {
		log.Printf("[Analyzer] %s: %v (detail: %s)", msg, err, truncate(appErr.Detail, 500))
		return
	}
	log.Printf("[Analyzer] %s: %v", msg, err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s... (%d bytes)", s[:n], len(s))
}
