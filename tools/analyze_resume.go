package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/resumeinsight/backend/analysis"
	"github.com/resumeinsight/backend/extraction"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/validation"
)

// AnalyzeResumeTool runs the AI analysis on resume text
type AnalyzeResumeTool struct {
	analyzer *analysis.Analyzer
}

// NewAnalyzeResumeTool creates a new resume analysis tool
func NewAnalyzeResumeTool(analyzer *analysis.Analyzer) *AnalyzeResumeTool {
	return &AnalyzeResumeTool{analyzer: analyzer}
}

func (t *AnalyzeResumeTool) Name() string {
	return "analyze_resume"
}

func (t *AnalyzeResumeTool) Description() string {
	return `Analyze resume text for a target role using AI.
The text is cleaned and checked to look like a resume first.
Returns the normalized report: ATS score and level, keyword coverage, quick fixes,
recruiter insights and interview preparation.`
}

func (t *AnalyzeResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text":     stringProperty("The resume text to analyze"),
			"target_role":     stringProperty("The role the candidate is applying for"),
			"job_description": stringProperty("Optional job description to match against"),
		},
		"required": []string{"resume_text", "target_role"},
	}
}

// AnalyzeResumeInput represents the input for resume analysis
type AnalyzeResumeInput struct {
	ResumeText     string `json:"resume_text"`
	TargetRole     string `json:"target_role"`
	JobDescription string `json:"job_description,omitempty"`
}

// AnalyzeResumeOutput is the report and the structured resume fields
type AnalyzeResumeOutput struct {
	Analysis *models.NormalizedAnalysis `json:"analysis"`
	Resume   *models.ResumeProfile      `json:"resume"`
}

func (t *AnalyzeResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in AnalyzeResumeInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if strings.TrimSpace(in.TargetRole) == "" {
		return NewErrorResult("target_role is required")
	}

	text := extraction.Clean(in.ResumeText)
	if verdict := validation.ValidateResume(text); !verdict.IsValid {
		return NewErrorResult(verdict.Reason)
	}
	if verdict := validation.ValidateJobDescription(in.JobDescription); !verdict.IsValid {
		return NewErrorResult(verdict.Reason)
	}

	result, err := t.analyzer.Analyze(ctx, text, strings.TrimSpace(in.TargetRole), strings.TrimSpace(in.JobDescription))
	if err != nil {
		return newAppErrorResult(err)
	}

	return NewSuccessResult(AnalyzeResumeOutput{
		Analysis: result.Analysis,
		Resume:   result.Resume,
	})
}
