package models

import (
	"errors"
	"fmt"
	"time"
)

// ProcessingStatus is the lifecycle stage of an AnalysisRecord
type ProcessingStatus string

const (
	StatusUploaded      ProcessingStatus = "uploaded"
	StatusTextExtracted ProcessingStatus = "text_extracted"
	StatusProcessingAI  ProcessingStatus = "processing_ai"
	StatusCompleted     ProcessingStatus = "completed"
	StatusFailed        ProcessingStatus = "failed"
)

// Processing stages recorded in ProcessingError.Stage
const (
	StageExtraction = "text_extraction"
	StageValidation = "validation"
	StageAnalysis   = "ai_analysis"
)

// ErrInvalidTransition is returned when a status change is not allowed
var ErrInvalidTransition = errors.New("invalid processing status transition")

// allowed forward transitions; failed is reachable from every state
var transitions = map[ProcessingStatus][]ProcessingStatus{
	StatusUploaded:      {StatusTextExtracted},
	StatusTextExtracted: {StatusProcessingAI},
	StatusProcessingAI:  {StatusCompleted},
	// re-analysis of an already extracted record
	StatusCompleted: {StatusProcessingAI},
	StatusFailed:    {StatusProcessingAI},
}

// CanTransition reports whether from -> to is a legal status change
func CanTransition(from, to ProcessingStatus) bool {
	if to == StatusFailed {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidationVerdict is the result of a resume or job description content check
type ValidationVerdict struct {
	IsValid    bool           `json:"isValid" firestore:"isValid"`
	Confidence int            `json:"confidence" firestore:"confidence" example:"90"`
	Reason     string         `json:"reason" firestore:"reason"`
	IsEmpty    bool           `json:"isEmpty,omitempty" firestore:"isEmpty,omitempty"`
	Details    map[string]int `json:"details,omitempty" firestore:"details,omitempty"`
}

// ProcessingError is one entry of a record's failure log
type ProcessingError struct {
	Stage     string    `json:"stage" firestore:"stage"`
	Message   string    `json:"message" firestore:"message"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// AnalysisRecord is a persisted resume upload and its analysis
type AnalysisRecord struct {
	ID     string `json:"id" firestore:"-"`
	UserID string `json:"userId" firestore:"userId"`

	// File metadata
	FileName  string `json:"fileName" firestore:"fileName"`
	MediaType string `json:"mediaType" firestore:"mediaType"`
	FileSize  int64  `json:"fileSize" firestore:"fileSize"`

	TargetRole     string `json:"targetRole" firestore:"targetRole"`
	JobDescription string `json:"jobDescription,omitempty" firestore:"jobDescription"`

	// Extraction output
	ExtractedText      string            `json:"extractedText" firestore:"extractedText"`
	ExtractionStrategy string            `json:"extractionStrategy" firestore:"extractionStrategy"`
	ResumeValidation   ValidationVerdict `json:"resumeValidation" firestore:"resumeValidation"`

	// Set only once analysis succeeds
	Resume     *ResumeProfile      `json:"resume,omitempty" firestore:"resume,omitempty"`
	AIAnalysis *NormalizedAnalysis `json:"aiAnalysis,omitempty" firestore:"aiAnalysis,omitempty"`

	ProcessingStatus ProcessingStatus  `json:"processingStatus" firestore:"processingStatus"`
	ProcessingErrors []ProcessingError `json:"processingErrors" firestore:"processingErrors"`

	UploadedAt  time.Time  `json:"uploadedAt" firestore:"uploadedAt"`
	AnalyzedAt  *time.Time `json:"analyzedAt,omitempty" firestore:"analyzedAt,omitempty"`
	LastUpdated time.Time  `json:"lastUpdated" firestore:"lastUpdated"`
}

// Transition moves the record to the given status
func (r *AnalysisRecord) Transition(to ProcessingStatus, now time.Time) error {
	if !CanTransition(r.ProcessingStatus, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.ProcessingStatus, to)
	}
	r.ProcessingStatus = to
	r.LastUpdated = now
	// aiAnalysis only exists on completed records
	if to != StatusCompleted {
		r.AIAnalysis = nil
	}
	return nil
}

// Fail moves the record to failed and appends an entry to its error log
func (r *AnalysisRecord) Fail(stage string, err error, now time.Time) {
	r.ProcessingStatus = StatusFailed
	r.AIAnalysis = nil
	r.LastUpdated = now
	r.ProcessingErrors = append(r.ProcessingErrors, ProcessingError{
		Stage:     stage,
		Message:   err.Error(),
		Timestamp: now,
	})
}

// Complete stores a successful analysis
func (r *AnalysisRecord) Complete(analysis *NormalizedAnalysis, resume *ResumeProfile, now time.Time) error {
	if err := r.Transition(StatusCompleted, now); err != nil {
		return err
	}
	r.AIAnalysis = analysis
	r.Resume = resume
	r.AnalyzedAt = &now
	return nil
}

// IsFullyProcessed guards against records marked completed without their results
func (r *AnalysisRecord) IsFullyProcessed() bool {
	return r.ProcessingStatus == StatusCompleted && r.AIAnalysis != nil && r.AnalyzedAt != nil
}

// AnalysisSummary is the list view of an AnalysisRecord
type AnalysisSummary struct {
	ID               string           `json:"id"`
	FileName         string           `json:"fileName"`
	TargetRole       string           `json:"targetRole"`
	ProcessingStatus ProcessingStatus `json:"processingStatus"`
	OverallScore     *int             `json:"overallScore,omitempty"`
	ATSScore         *int             `json:"atsScore,omitempty"`
	UploadedAt       time.Time        `json:"uploadedAt"`
	AnalyzedAt       *time.Time       `json:"analyzedAt,omitempty"`
}

// Summary builds the list view of the record
func (r *AnalysisRecord) Summary() AnalysisSummary {
	s := AnalysisSummary{
		ID:               r.ID,
		FileName:         r.FileName,
		TargetRole:       r.TargetRole,
		ProcessingStatus: r.ProcessingStatus,
		UploadedAt:       r.UploadedAt,
		AnalyzedAt:       r.AnalyzedAt,
	}
	if r.IsFullyProcessed() {
		overall := r.AIAnalysis.OverallScore
		ats := r.AIAnalysis.ATSScore.Score
		s.OverallScore = &overall
		s.ATSScore = &ats
	}
	return s
}
