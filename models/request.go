package models

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"targetRole is required"`
	Kind    string `json:"kind,omitempty" example:"UnsupportedMediaType"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// UploadForm is the multipart form accepted by the upload endpoints.
// The file itself is read from the "resume" field.
type UploadForm struct {
	TargetRole     string `form:"targetRole" binding:"required,target_role" example:"Backend Engineer"`
	JobDescription string `form:"jobDescription" example:"We are hiring a backend engineer..."`
}

// AnalyzeRequest re-runs analysis on a stored record
// @Description Re-analysis options, empty fields keep the stored values
type AnalyzeRequest struct {
	TargetRole     string `json:"targetRole" binding:"omitempty,target_role" example:"Staff Engineer"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// ExtractionInfo describes how the text was obtained
type ExtractionInfo struct {
	Strategy         string `json:"strategy" example:"Standard"`
	ProcessingTimeMs int64  `json:"processingTimeMs" example:"42"`
	TextLength       int    `json:"textLength" example:"3120"`
}

// UploadResponse is returned after a resume is uploaded and validated
// @Description Stored record with validation verdicts
type UploadResponse struct {
	Record        *AnalysisRecord    `json:"record"`
	Extraction    ExtractionInfo     `json:"extraction"`
	JobValidation *ValidationVerdict `json:"jobValidation,omitempty"`
	Message       string             `json:"message,omitempty" example:"Resume uploaded successfully"`
}

// AnalysisResponse is returned after an analysis run
// @Description Analysis record with the normalized report
type AnalysisResponse struct {
	Record  *AnalysisRecord `json:"record"`
	Message string          `json:"message,omitempty" example:"Analysis completed"`
}

// InvalidResumeResponse is returned when the uploaded text does not look like a resume
// @Description Validation failure with verdict
type InvalidResumeResponse struct {
	Error      string            `json:"error" example:"Uploaded document does not look like a resume"`
	Code       int               `json:"code" example:"422"`
	Validation ValidationVerdict `json:"validation"`
}

// HistoryResponse is one page of a user's analyses
// @Description Paginated analysis history
type HistoryResponse struct {
	Analyses []AnalysisSummary `json:"analyses"`
	Page     int               `json:"page" example:"1"`
	Limit    int               `json:"limit" example:"10"`
	HasMore  bool              `json:"hasMore" example:"false"`
}

// ExportLinkResponse points at an archived history export
// @Description Signed download link for an XLSX export
type ExportLinkResponse struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt" example:"2024-01-15T10:45:00Z"`
}

// ValidateTextRequest is the body of the text validation endpoints
// @Description Text to validate
type ValidateTextRequest struct {
	Text string `json:"text" example:"John Doe\nExperience\n..."`
}
