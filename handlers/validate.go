package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/extraction"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/validation"
)

// ValidateResume scores whether text looks like a resume
// @Summary Validate resume text
// @Description Check whether text looks like a resume. The text is cleaned first.
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body models.ValidateTextRequest true "Text to validate"
// @Success 200 {object} models.ValidationVerdict "Verdict"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /validate/resume [post]
func ValidateResume(c *gin.Context) {
	var req models.ValidateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, validation.ValidateResume(extraction.Clean(req.Text)))
}

// ValidateJobDescription scores whether text looks like a job posting
// @Summary Validate job description text
// @Description Check whether text looks like a job description. Empty text is valid.
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body models.ValidateTextRequest true "Text to validate"
// @Success 200 {object} models.ValidationVerdict "Verdict"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /validate/job-description [post]
func ValidateJobDescription(c *gin.Context) {
	var req models.ValidateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	c.JSON(http.StatusOK, validation.ValidateJobDescription(req.Text))
}
