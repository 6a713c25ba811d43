package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/extraction"
	"github.com/resumeinsight/backend/utils"
)

// ResumeFileField is the multipart field carrying the document
const ResumeFileField = "resume"

// multipartOverhead leaves room for form fields and part headers
const multipartOverhead = 1 << 20

// readUpload reads the resume file of a multipart request. The checks follow
// the extractor's order: missing file, media type, then size.
func readUpload(c *gin.Context, maxBytes int64) (extraction.UploadedDocument, error) {
	var doc extraction.UploadedDocument

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	file, header, err := c.Request.FormFile(ResumeFileField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return doc, utils.NewPayloadTooLarge(c.Request.ContentLength, maxBytes)
		}
		log.Printf("[Upload] No %q file in request: %v", ResumeFileField, err)
		return doc, utils.NewMissingPayload()
	}
	defer file.Close()

	doc.FileName = header.Filename
	doc.MediaType = extraction.ResolveMediaType(header.Header.Get("Content-Type"), header.Filename)
	doc.Size = header.Size

	if header.Size == 0 {
		return doc, utils.NewMissingPayload()
	}
	if !extraction.IsSupportedMediaType(doc.MediaType) {
		return doc, utils.NewUnsupportedMediaType(doc.MediaType)
	}
	if header.Size > maxBytes {
		return doc, utils.NewPayloadTooLarge(header.Size, maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return doc, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return doc, utils.NewPayloadTooLarge(int64(len(data)), maxBytes)
	}

	doc.Data = data
	log.Printf("[Upload] Received %s (%s, %d bytes)", doc.FileName, doc.MediaType, len(data))
	return doc, nil
}
