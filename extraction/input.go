package extraction

import (
	"github.com/resumeinsight/backend/utils"
)

// InputValidator rejects uploads before any parsing work is done
type InputValidator struct {
	maxBytes int64
}

// NewInputValidator creates a validator with the given size ceiling
func NewInputValidator(maxBytes int64) *InputValidator {
	return &InputValidator{maxBytes: maxBytes}
}

// Validate checks presence, media type and size, in that order.
// Both the declared size and the actual buffer length must fit the ceiling.
func (v *InputValidator) Validate(doc UploadedDocument) error {
	if len(doc.Data) == 0 {
		return utils.NewMissingPayload()
	}

	if !IsSupportedMediaType(doc.MediaType) {
		return utils.NewUnsupportedMediaType(doc.MediaType)
	}

	size := doc.Size
	if actual := int64(len(doc.Data)); actual > size {
		size = actual
	}
	if v.maxBytes > 0 && size > v.maxBytes {
		return utils.NewPayloadTooLarge(size, v.maxBytes)
	}

	return nil
}
