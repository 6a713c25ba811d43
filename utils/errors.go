package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies pipeline failures
type ErrorKind string

const (
	KindUnsupportedMediaType   ErrorKind = "UnsupportedMediaType"
	KindPayloadTooLarge        ErrorKind = "PayloadTooLarge"
	KindMissingPayload         ErrorKind = "MissingPayload"
	KindExtractionExhausted    ErrorKind = "ExtractionExhausted"
	KindMalformedModelResponse ErrorKind = "MalformedModelResponse"
	KindEmptyModelResponse     ErrorKind = "EmptyModelResponse"
	KindUpstreamServiceError   ErrorKind = "UpstreamServiceError"
)

// AppError is the error type returned by extraction and analysis.
// Detail carries diagnostic text (raw model output, upstream body) meant for logs only.
type AppError struct {
	Kind           ErrorKind
	Message        string
	Detail         string
	UpstreamStatus int
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error kind to a response status code
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindMissingPayload:
		return http.StatusBadRequest
	case KindUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindExtractionExhausted:
		return http.StatusUnprocessableEntity
	case KindMalformedModelResponse, KindEmptyModelResponse, KindUpstreamServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ClientFacing reports whether Message can be shown to end users as is
func (e *AppError) ClientFacing() bool {
	return e.HTTPStatus() < http.StatusInternalServerError
}

func NewUnsupportedMediaType(mediaType string) *AppError {
	return &AppError{
		Kind:    KindUnsupportedMediaType,
		Message: fmt.Sprintf("unsupported file type %q, upload a PDF, DOCX or plain text file", mediaType),
	}
}

func NewPayloadTooLarge(size, limit int64) *AppError {
	return &AppError{
		Kind:    KindPayloadTooLarge,
		Message: fmt.Sprintf("file is too large (%d bytes, maximum %d bytes)", size, limit),
	}
}

func NewMissingPayload() *AppError {
	return &AppError{
		Kind:    KindMissingPayload,
		Message: "no file content was provided",
	}
}

func NewExtractionExhausted(attempts int) *AppError {
	return &AppError{
		Kind:    KindExtractionExhausted,
		Message: "could not extract readable text, the document may be corrupted or image-based/non-text",
		Detail:  fmt.Sprintf("%d strategies attempted", attempts),
	}
}

func NewMalformedModelResponse(raw string, cause error) *AppError {
	return &AppError{
		Kind:    KindMalformedModelResponse,
		Message: "analysis service returned an unreadable response",
		Detail:  raw,
		Cause:   cause,
	}
}

func NewEmptyModelResponse() *AppError {
	return &AppError{
		Kind:    KindEmptyModelResponse,
		Message: "analysis service returned no content",
	}
}

// NewUpstreamServiceError reports a failed call to the generation service.
// A zero status means no response was received.
func NewUpstreamServiceError(status int, body string, cause error) *AppError {
	message := "analysis service is unreachable"
	if status != 0 {
		message = fmt.Sprintf("analysis service request failed with status %d", status)
	}
	return &AppError{
		Kind:           KindUpstreamServiceError,
		Message:        message,
		Detail:         body,
		UpstreamStatus: status,
		Cause:          cause,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or "" if there is none
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries an AppError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
