package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/auth"
	"github.com/resumeinsight/backend/models"
	"github.com/resumeinsight/backend/pipeline"
	"github.com/resumeinsight/backend/storage"
	"github.com/resumeinsight/backend/utils"
)

// upstreamMessage replaces messages of errors that carry provider details
const upstreamMessage = "The analysis service is temporarily unavailable, please try again later"

// respondError writes the JSON error envelope for err
func respondError(c *gin.Context, err error) {
	var appErr *utils.AppError
	switch {
	case errors.As(err, &appErr):
		status := appErr.HTTPStatus()
		message := appErr.Message
		if !appErr.ClientFacing() {
			log.Printf("[Handler] %s %s failed: %v (upstream status %d, detail: %.500s)",
				c.Request.Method, c.FullPath(), err, appErr.UpstreamStatus, appErr.Detail)
			message = upstreamMessage
		}
		c.JSON(status, models.ErrorResponse{
			Error: message,
			Code:  status,
			Kind:  string(appErr.Kind),
		})
	case errors.Is(err, storage.ErrAnalysisNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Analysis not found",
			Code:  http.StatusNotFound,
		})
	case errors.Is(err, pipeline.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "You do not have access to this analysis",
			Code:  http.StatusForbidden,
		})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "Analysis is already in progress",
			Code:    http.StatusConflict,
			Details: err.Error(),
		})
	default:
		log.Printf("[Handler] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
	}
}

func respondBadRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{
		Error: message,
		Code:  http.StatusBadRequest,
	}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// requireClaims returns the caller's claims or writes 401
func requireClaims(c *gin.Context) (*auth.Claims, bool) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return nil, false
	}
	return claims, true
}
