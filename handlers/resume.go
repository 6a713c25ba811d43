package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/pipeline"
	"github.com/resumeinsight/backend/validation"
)

// ResumeHandler handles resume upload and analysis requests
type ResumeHandler struct {
	pipeline       *pipeline.Pipeline
	maxUploadBytes int64
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(p *pipeline.Pipeline, maxUploadBytes int64) *ResumeHandler {
	return &ResumeHandler{
		pipeline:       p,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload stores a resume after extraction and validation
// @Summary Upload a resume
// @Description Upload a PDF, DOCX or plain text resume. The text is extracted, cleaned and checked to look like a resume before it is stored.
// @Tags Resumes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file (PDF, DOCX, TXT)"
// @Param targetRole formData string true "Target role"
// @Param jobDescription formData string false "Job description"
// @Success 201 {object} models.UploadResponse "Resume stored"
// @Failure 400 {object} models.ErrorResponse "Missing file, invalid form or job description"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 415 {object} models.ErrorResponse "Unsupported file type"
// @Failure 422 {object} models.InvalidResumeResponse "Text could not be extracted or is not a resume"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /resumes [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	doc, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	var form models.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, "Invalid form data", err)
		return
	}

	outcome, err := h.pipeline.Upload(c.Request.Context(), claims.OwnerID(), doc, form.TargetRole, form.JobDescription)
	if err != nil {
		respondError(c, err)
		return
	}
	if !h.writeRejection(c, outcome) {
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{
		Record:        outcome.Record,
		Extraction:    extractionInfo(outcome),
		JobValidation: outcome.JobVerdict,
		Message:       "Resume uploaded successfully",
	})
}

// Analyze runs the AI analysis on a stored resume
// @Summary Analyze a stored resume
// @Description Run the AI analysis on an uploaded resume. A completed or failed analysis can be run again.
// @Tags Resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Param request body models.AnalyzeRequest false "Optional new target role or job description"
// @Success 200 {object} models.AnalysisResponse "Analysis completed"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Analysis not found"
// @Failure 409 {object} models.ErrorResponse "Analysis already running"
// @Failure 502 {object} models.ErrorResponse "Analysis service failed"
// @Router /resumes/{id}/analyze [post]
func (h *ResumeHandler) Analyze(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req models.AnalyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request body", err)
			return
		}
	}

	if verdict := validation.ValidateJobDescription(req.JobDescription); !verdict.IsValid {
		respondBadRequest(c, "Job description does not look like a job posting", nil)
		return
	}

	record, err := h.pipeline.Analyze(c.Request.Context(), claims.OwnerID(), c.Param("id"), req.TargetRole, req.JobDescription)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AnalysisResponse{
		Record:  record,
		Message: "Analysis completed",
	})
}

// UploadAndAnalyze uploads a resume and analyzes it in one request
// @Summary Upload and analyze a resume
// @Description Upload a resume and run the AI analysis in one call
// @Tags Resumes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file (PDF, DOCX, TXT)"
// @Param targetRole formData string true "Target role"
// @Param jobDescription formData string false "Job description"
// @Success 201 {object} models.AnalysisResponse "Analysis completed"
// @Failure 400 {object} models.ErrorResponse "Missing file, invalid form or job description"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 415 {object} models.ErrorResponse "Unsupported file type"
// @Failure 422 {object} models.InvalidResumeResponse "Text could not be extracted or is not a resume"
// @Failure 502 {object} models.ErrorResponse "Analysis service failed"
// @Router /analyze [post]
func (h *ResumeHandler) UploadAndAnalyze(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	doc, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	var form models.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, "Invalid form data", err)
		return
	}

	outcome, err := h.pipeline.UploadAndAnalyze(c.Request.Context(), claims.OwnerID(), doc, form.TargetRole, form.JobDescription)
	if err != nil {
		if outcome != nil && outcome.Record != nil {
			log.Printf("[ResumeHandler] Analysis %s stored as %s", outcome.Record.ID, outcome.Record.ProcessingStatus)
		}
		respondError(c, err)
		return
	}
	if !h.writeRejection(c, outcome) {
		return
	}

	c.JSON(http.StatusCreated, models.AnalysisResponse{
		Record:  outcome.Record,
		Message: "Analysis completed",
	})
}

// writeRejection writes the response for an upload that a verdict rejected.
// It returns true when the upload was accepted.
func (h *ResumeHandler) writeRejection(c *gin.Context, outcome *pipeline.UploadOutcome) bool {
	if !outcome.ResumeVerdict.IsValid {
		c.JSON(http.StatusUnprocessableEntity, models.InvalidResumeResponse{
			Error:      "Uploaded document does not look like a resume",
			Code:       http.StatusUnprocessableEntity,
			Validation: outcome.ResumeVerdict,
		})
		return false
	}
	if outcome.JobVerdict != nil && !outcome.JobVerdict.IsValid {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Job description does not look like a job posting",
			Code:    http.StatusBadRequest,
			Details: strings.TrimSpace(outcome.JobVerdict.Reason),
		})
		return false
	}
	return true
}

func extractionInfo(outcome *pipeline.UploadOutcome) models.ExtractionInfo {
	return models.ExtractionInfo{
		Strategy:         outcome.Extraction.StrategyUsed,
		ProcessingTimeMs: outcome.Extraction.ProcessingTimeMs,
		TextLength:       outcome.Extraction.TextLength,
	}
}
