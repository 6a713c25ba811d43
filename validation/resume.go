package validation

import (
	"fmt"
	"strings"

	"github.com/resumeinsight/backend/models"
)

// MinResumeWords is the minimum word count of a plausible resume
const MinResumeWords = 100

// Confidence weights
const (
	weightSections      = 40
	weightEducationWork = 30
	weightContact       = 20
	weightTechnical     = 10
)

// ValidateResume scores how much text looks like a resume.
// Contact details raise confidence but are not required for validity.
func ValidateResume(text string) models.ValidationVerdict {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.ValidationVerdict{
			Reason:  "No text found in the document",
			IsEmpty: true,
		}
	}

	wordCount := len(strings.Fields(trimmed))
	if wordCount < MinResumeWords {
		return models.ValidationVerdict{
			Reason: fmt.Sprintf("Resume is too short (%d words, minimum %d required)", wordCount, MinResumeWords),
		}
	}

	hits := countHits(strings.ToLower(trimmed), resumeKeywords)

	hasRequiredSections := hits[CategorySections] >= 2
	hasEducationOrWork := hits[CategoryEducation]+hits[CategoryWork] >= 1
	hasContactInfo := hits[CategoryContact] >= 1
	hasTechnical := hits[CategoryTechnical] >= 1

	confidence := 0
	if hasRequiredSections {
		confidence += weightSections
	}
	if hasEducationOrWork {
		confidence += weightEducationWork
	}
	if hasContactInfo {
		confidence += weightContact
	}
	if hasTechnical {
		confidence += weightTechnical
	}

	verdict := models.ValidationVerdict{
		IsValid:    hasRequiredSections && hasEducationOrWork,
		Confidence: confidence,
		Details:    hits,
	}

	if verdict.IsValid {
		verdict.Reason = "Document appears to be a resume"
		return verdict
	}

	var missing []string
	if !hasRequiredSections {
		missing = append(missing, "missing common resume sections (e.g. experience, education, skills)")
	}
	if !hasEducationOrWork {
		missing = append(missing, "no education or work history found")
	}
	if !hasContactInfo {
		missing = append(missing, "no contact information found")
	}
	verdict.Reason = "Document does not look like a resume: " + strings.Join(missing, "; ")
	return verdict
}
