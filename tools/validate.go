package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/validation"
)

// TextInput is the input of the validation tools
type TextInput struct {
	Text string `json:"text"`
}

func textInputSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": stringProperty(description),
		},
		"required": []string{"text"},
	}
}

func runValidator(input json.RawMessage, validate func(string) models.ValidationVerdict) (json.RawMessage, error) {
	var in TextInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	return NewSuccessResult(validate(in.Text))
}

// ValidateResumeTool scores whether text looks like a resume
type ValidateResumeTool struct{}

// NewValidateResumeTool creates a new resume validation tool
func NewValidateResumeTool() *ValidateResumeTool {
	return &ValidateResumeTool{}
}

func (t *ValidateResumeTool) Name() string {
	return "validate_resume"
}

func (t *ValidateResumeTool) Description() string {
	return `Check whether text looks like a resume.
Returns isValid, a 0-100 confidence, a reason and per-category keyword hits.`
}

func (t *ValidateResumeTool) InputSchema() map[string]interface{} {
	return textInputSchema("Resume text")
}

func (t *ValidateResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	return runValidator(input, validation.ValidateResume)
}

// ValidateJobDescriptionTool scores whether text looks like a job posting
type ValidateJobDescriptionTool struct{}

// NewValidateJobDescriptionTool creates a new job description validation tool
func NewValidateJobDescriptionTool() *ValidateJobDescriptionTool {
	return &ValidateJobDescriptionTool{}
}

func (t *ValidateJobDescriptionTool) Name() string {
	return "validate_job_description"
}

func (t *ValidateJobDescriptionTool) Description() string {
	return `Check whether text looks like a job description. Empty text is valid.`
}

func (t *ValidateJobDescriptionTool) InputSchema() map[string]interface{} {
	return textInputSchema("Job description text")
}

func (t *ValidateJobDescriptionTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	return runValidator(input, validation.ValidateJobDescription)
}
