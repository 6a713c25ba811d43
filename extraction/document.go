package extraction

import (
	"mime"
	"path/filepath"
	"strings"
)

// Supported media types
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeText = "text/plain"

	mediaTypeOctetStream = "application/octet-stream"
)

var extensionMediaTypes = map[string]string{
	".pdf":  MediaTypePDF,
	".docx": MediaTypeDOCX,
	".txt":  MediaTypeText,
	".text": MediaTypeText,
}

// UploadedDocument is a document received from a client.
// It only lives for the duration of one request.
type UploadedDocument struct {
	Data      []byte
	MediaType string
	Size      int64
	FileName  string
}

// NormalizeMediaType lowercases a declared media type and drops its parameters
func NormalizeMediaType(declared string) string {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(declared); err == nil {
		return parsed
	}
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = declared[:i]
	}
	return strings.ToLower(strings.TrimSpace(declared))
}

// MediaTypeFromFilename guesses the media type from the file extension
func MediaTypeFromFilename(filename string) string {
	return extensionMediaTypes[strings.ToLower(filepath.Ext(filename))]
}

// ResolveMediaType picks the media type for an upload. Browsers often send
// an empty or generic type, in which case the filename decides.
func ResolveMediaType(declared, filename string) string {
	mt := NormalizeMediaType(declared)
	if mt == "" || mt == mediaTypeOctetStream {
		if guessed := MediaTypeFromFilename(filename); guessed != "" {
			return guessed
		}
	}
	return mt
}

// IsSupportedMediaType checks the media type against the allow-list
func IsSupportedMediaType(mediaType string) bool {
	switch NormalizeMediaType(mediaType) {
	case MediaTypePDF, MediaTypeDOCX, MediaTypeText:
		return true
	}
	return false
}
