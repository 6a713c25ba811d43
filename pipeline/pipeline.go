package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/resumeinsight/backend/analysis"
	"github.com/resumeinsight/backend/extraction"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/storage"
	"github.com/resumeinsight/backend/validation"
)

// ErrForbidden is returned when a record belongs to another user
var ErrForbidden = errors.New("analysis belongs to another user")

var errStaleProcessing = errors.New("analysis did not finish and was restarted")

// staleProcessingAfter is how long a record may stay in processing_ai before
// another Analyze call can take it over. It matches the server write timeout.
const staleProcessingAfter = 3 * time.Minute

// Paging bounds for history listings
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	// exportLimit caps how many records one export reads
	exportLimit = 500
)

// Pipeline runs extraction, validation and analysis for a user and keeps
// the stored AnalysisRecord in step with each stage
type Pipeline struct {
	extractor *extraction.Extractor
	analyzer  *analysis.Analyzer
	store     storage.AnalysisStore
	now       func() time.Time
}

// UploadOutcome is the result of an upload. Record is nil when a verdict
// rejected the upload and nothing was stored.
type UploadOutcome struct {
	Record        *models.AnalysisRecord
	ResumeVerdict models.ValidationVerdict
	JobVerdict    *models.ValidationVerdict
	Extraction    *extraction.ExtractionResult
}

// Accepted reports whether the upload was stored
func (o *UploadOutcome) Accepted() bool {
	return o.Record != nil
}

// New creates a pipeline
func New(extractor *extraction.Extractor, analyzer *analysis.Analyzer, store storage.AnalysisStore) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		analyzer:  analyzer,
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upload extracts and validates a document. A record in text_extracted is
// stored only when the resume, and the job description if one was given, pass.
func (p *Pipeline) Upload(ctx context.Context, userID string, doc extraction.UploadedDocument, targetRole, jobDescription string) (*UploadOutcome, error) {
	log.Printf("[Pipeline] Upload %s (%s, %d bytes) for %s", doc.FileName, doc.MediaType, len(doc.Data), userID)

	result, err := p.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	outcome := &UploadOutcome{
		ResumeVerdict: validation.ValidateResume(result.CleanedText),
		Extraction:    result,
	}
	if strings.TrimSpace(jobDescription) != "" {
		verdict := validation.ValidateJobDescription(jobDescription)
		outcome.JobVerdict = &verdict
	}

	if !outcome.ResumeVerdict.IsValid {
		log.Printf("[Pipeline] Rejected %s: %s", doc.FileName, outcome.ResumeVerdict.Reason)
		return outcome, nil
	}
	if outcome.JobVerdict != nil && !outcome.JobVerdict.IsValid {
		log.Printf("[Pipeline] Rejected job description for %s: %s", doc.FileName, outcome.JobVerdict.Reason)
		return outcome, nil
	}

	now := p.now()
	record := &models.AnalysisRecord{
		UserID:             userID,
		FileName:           doc.FileName,
		MediaType:          extraction.NormalizeMediaType(doc.MediaType),
		FileSize:           int64(len(doc.Data)),
		TargetRole:         strings.TrimSpace(targetRole),
		JobDescription:     strings.TrimSpace(jobDescription),
		ExtractedText:      result.CleanedText,
		ExtractionStrategy: result.StrategyUsed,
		ResumeValidation:   outcome.ResumeVerdict,
		ProcessingStatus:   models.StatusUploaded,
		ProcessingErrors:   []models.ProcessingError{},
		UploadedAt:         now,
		LastUpdated:        now,
	}
	if err := record.Transition(models.StatusTextExtracted, now); err != nil {
		return nil, err
	}

	if err := p.store.CreateAnalysis(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	log.Printf("[Pipeline] Stored analysis %s (strategy %q, confidence %d)",
		record.ID, record.ExtractionStrategy, record.ResumeValidation.Confidence)
	outcome.Record = record
	return outcome, nil
}

// Analyze runs the model on a stored record. Empty targetRole or
// jobDescription keep the values stored with the record. On failure the
// record is left in failed with the error appended, and the error is returned.
// A record left in processing_ai for longer than staleProcessingAfter is
// failed and run again; a fresher one is rejected as already running.
func (p *Pipeline) Analyze(ctx context.Context, userID, recordID, targetRole, jobDescription string) (*models.AnalysisRecord, error) {
	record, err := p.Get(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}

	if role := strings.TrimSpace(targetRole); role != "" {
		record.TargetRole = role
	}
	if jd := strings.TrimSpace(jobDescription); jd != "" {
		record.JobDescription = jd
	}

	now := p.now()
	if record.ProcessingStatus == models.StatusProcessingAI && now.Sub(record.LastUpdated) > staleProcessingAfter {
		log.Printf("[Pipeline] Analysis %s in %s since %s, restarting", record.ID, record.ProcessingStatus, record.LastUpdated.Format(time.RFC3339))
		record.Fail(models.StageAnalysis, errStaleProcessing, now)
	}

	if err := record.Transition(models.StatusProcessingAI, now); err != nil {
		return nil, err
	}
	if err := p.store.UpdateAnalysis(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update analysis: %w", err)
	}

	return p.runAnalysis(ctx, record)
}

// UploadAndAnalyze uploads a document and analyzes it in one call.
// A rejected upload is returned without running the model.
func (p *Pipeline) UploadAndAnalyze(ctx context.Context, userID string, doc extraction.UploadedDocument, targetRole, jobDescription string) (*UploadOutcome, error) {
	outcome, err := p.Upload(ctx, userID, doc, targetRole, jobDescription)
	if err != nil || !outcome.Accepted() {
		return outcome, err
	}

	record := outcome.Record
	if err := record.Transition(models.StatusProcessingAI, p.now()); err != nil {
		return outcome, err
	}
	if err := p.store.UpdateAnalysis(ctx, record); err != nil {
		return outcome, fmt.Errorf("failed to update analysis: %w", err)
	}

	record, err = p.runAnalysis(ctx, record)
	outcome.Record = record
	return outcome, err
}

func (p *Pipeline) runAnalysis(ctx context.Context, record *models.AnalysisRecord) (*models.AnalysisRecord, error) {
	result, err := p.analyzer.Analyze(ctx, record.ExtractedText, record.TargetRole, record.JobDescription)
	if err != nil {
		p.recordFailure(ctx, record, err)
		log.Printf("[Pipeline] Analysis %s failed: %v", record.ID, err)
		return record, err
	}

	if err := record.Complete(result.Analysis, result.Resume, p.now()); err != nil {
		return nil, err
	}
	if err := p.store.UpdateAnalysis(ctx, record); err != nil {
		err = fmt.Errorf("failed to update analysis: %w", err)
		p.recordFailure(ctx, record, err)
		return record, err
	}

	log.Printf("[Pipeline] Analysis %s completed: overall=%d ats=%d",
		record.ID, record.AIAnalysis.OverallScore, record.AIAnalysis.ATSScore.Score)
	return record, nil
}

// recordFailure marks the record failed and stores it. The store call gets its
// own context so a cancelled request still leaves the record out of processing_ai.
func (p *Pipeline) recordFailure(ctx context.Context, record *models.AnalysisRecord, err error) {
	record.Fail(models.StageAnalysis, err, p.now())
	if updateErr := p.store.UpdateAnalysis(context.WithoutCancel(ctx), record); updateErr != nil {
		log.Printf("[Pipeline] Failed to record failure for %s: %v", record.ID, updateErr)
	}
}

// Get returns a record owned by userID
func (p *Pipeline) Get(ctx context.Context, userID, recordID string) (*models.AnalysisRecord, error) {
	record, err := p.store.GetAnalysis(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrForbidden
	}
	return record, nil
}

// Delete removes a record owned by userID
func (p *Pipeline) Delete(ctx context.Context, userID, recordID string) error {
	if _, err := p.Get(ctx, userID, recordID); err != nil {
		return err
	}
	return p.store.DeleteAnalysis(ctx, recordID)
}

// History returns one page of the user's analyses, newest first.
// page starts at 1; out of range values are clamped.
func (p *Pipeline) History(ctx context.Context, userID string, page, limit int) (*models.HistoryResponse, error) {
	page, limit = NormalizePage(page, limit)

	records, hasMore, err := p.store.ListAnalyses(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.AnalysisSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Summary())
	}

	return &models.HistoryResponse{
		Analyses: summaries,
		Page:     page,
		Limit:    limit,
		HasMore:  hasMore,
	}, nil
}

// Records returns the user's analyses for export, newest first
func (p *Pipeline) Records(ctx context.Context, userID string) ([]*models.AnalysisRecord, error) {
	var all []*models.AnalysisRecord
	for offset := 0; offset < exportLimit; offset += MaxPageSize {
		records, hasMore, err := p.store.ListAnalyses(ctx, userID, offset, MaxPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
		if !hasMore {
			break
		}
	}
	return all, nil
}

// NormalizePage clamps paging parameters
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
