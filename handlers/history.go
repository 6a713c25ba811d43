package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/export"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/pipeline"
	"github.com/resumeinsight/backend/storage"
)

// exportLinkTTL is how long a signed export link stays valid
const exportLinkTTL = 15 * time.Minute

// ExportArchive stores exported reports and signs download links
type ExportArchive interface {
	UploadExport(ctx context.Context, objectName string, content []byte, contentType string) (string, error)
	GetSignedURL(ctx context.Context, objectName string, expiration time.Duration) (string, error)
}

// HistoryHandler serves a user's past analyses
type HistoryHandler struct {
	pipeline *pipeline.Pipeline
	archive  ExportArchive
}

// NewHistoryHandler creates a new history handler. archive may be nil,
// in which case exports are only available as direct downloads.
func NewHistoryHandler(p *pipeline.Pipeline, archive ExportArchive) *HistoryHandler {
	return &HistoryHandler{
		pipeline: p,
		archive:  archive,
	}
}

// List returns one page of the user's analyses
// @Summary List analyses
// @Description List the authenticated user's analyses, newest first
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} models.HistoryResponse "Analyses"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /analyses [get]
func (h *HistoryHandler) List(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	history, err := h.pipeline.History(c.Request.Context(), claims.OwnerID(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// Get returns one analysis
// @Summary Get an analysis
// @Description Get one of the authenticated user's analyses
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Success 200 {object} models.AnalysisRecord "Analysis"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Analysis not found"
// @Router /analyses/{id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	record, err := h.pipeline.Get(c.Request.Context(), claims.OwnerID(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete removes one analysis
// @Summary Delete an analysis
// @Tags History
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Success 204 "Deleted"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Analysis not found"
// @Router /analyses/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	if err := h.pipeline.Delete(c.Request.Context(), claims.OwnerID(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Export returns the user's history as an XLSX workbook
// @Summary Export analyses
// @Description Download the authenticated user's analyses as XLSX, or with delivery=link get a signed Cloud Storage URL
// @Tags History
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Security BearerAuth
// @Param delivery query string false "download (default) or link"
// @Success 200 {object} models.ExportLinkResponse "Signed link when delivery=link"
// @Failure 503 {object} models.ErrorResponse "Export archive not configured"
// @Router /analyses/export [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	delivery := c.DefaultQuery("delivery", "download")
	if delivery != "download" && delivery != "link" {
		respondBadRequest(c, "delivery must be download or link", nil)
		return
	}
	if delivery == "link" && h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "Export archive is not configured",
			Code:  http.StatusServiceUnavailable,
		})
		return
	}

	ctx := c.Request.Context()
	records, err := h.pipeline.Records(ctx, claims.OwnerID())
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.HistoryWorkbook(records)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	if delivery == "download" {
		filename := fmt.Sprintf("analyses-%s.xlsx", now.Format("20060102"))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, export.ContentType, data)
		return
	}

	objectName, err := h.archive.UploadExport(ctx, storage.ExportObjectName(claims.OwnerID(), now, ".xlsx"), data, export.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}
	url, err := h.archive.GetSignedURL(ctx, objectName, exportLinkTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ExportLinkResponse{
		URL:       url,
		ExpiresAt: now.Add(exportLinkTTL).Format(time.RFC3339),
	})
}
