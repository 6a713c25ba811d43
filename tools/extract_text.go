package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/resumeinsight/backend/extraction"
)

// ExtractTextTool extracts and cleans the text of a resume document
type ExtractTextTool struct {
	extractor *extraction.Extractor
}

// NewExtractTextTool creates a new text extraction tool
func NewExtractTextTool(extractor *extraction.Extractor) *ExtractTextTool {
	return &ExtractTextTool{extractor: extractor}
}

func (t *ExtractTextTool) Name() string {
	return "extract_resume_text"
}

func (t *ExtractTextTool) Description() string {
	return `Extract clean text from a resume document (PDF, DOCX or plain text).
Input is the base64 encoded file with its name and optional media type.
Returns the cleaned text and the extraction strategy that produced it.`
}

func (t *ExtractTextTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file_name":      stringProperty("Original file name, used to infer the type when media_type is empty"),
			"media_type":     stringProperty("Media type of the file, e.g. application/pdf"),
			"content_base64": stringProperty("Base64 encoded file content"),
		},
		"required": []string{"file_name", "content_base64"},
	}
}

// ExtractTextInput represents the input for text extraction
type ExtractTextInput struct {
	FileName      string `json:"file_name"`
	MediaType     string `json:"media_type,omitempty"`
	ContentBase64 string `json:"content_base64"`
}

// ExtractTextOutput is the extracted text and how it was obtained
type ExtractTextOutput struct {
	Text             string `json:"text"`
	Strategy         string `json:"strategy"`
	TextLength       int    `json:"text_length"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

func (t *ExtractTextTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ExtractTextInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	data, err := base64.StdEncoding.DecodeString(in.ContentBase64)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("content_base64 is not valid base64: %v", err))
	}

	doc := extraction.UploadedDocument{
		Data:      data,
		MediaType: extraction.ResolveMediaType(in.MediaType, in.FileName),
		Size:      int64(len(data)),
		FileName:  in.FileName,
	}

	result, err := t.extractor.Extract(doc)
	if err != nil {
		return newAppErrorResult(err)
	}

	return NewSuccessResult(ExtractTextOutput{
		Text:             result.CleanedText,
		Strategy:         result.StrategyUsed,
		TextLength:       result.TextLength,
		ProcessingTimeMs: result.ProcessingTimeMs,
	})
}
