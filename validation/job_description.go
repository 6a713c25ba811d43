package validation

import (
	"fmt"
	"strings"

	"github.com/resumeinsight/backend/models"
)

// MinJobDescriptionWords is the minimum word count of a non-empty job description
const MinJobDescriptionWords = 50

const (
	jobCategoryWeight  = 25
	minJobCategoryHits = 2
)

// scoredJobCategories feed confidence and the validity gate.
// Work keywords are reported in Details only.
var scoredJobCategories = []string{
	CategoryPosting,
	CategoryRequirements,
	CategoryResponsibilities,
	CategorySkills,
}

// ValidateJobDescription scores how much text looks like a job posting.
// The job description is optional, so empty input is valid.
func ValidateJobDescription(text string) models.ValidationVerdict {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.ValidationVerdict{
			IsValid: true,
			IsEmpty: true,
			Reason:  "No job description provided",
		}
	}

	wordCount := len(strings.Fields(trimmed))
	if wordCount < MinJobDescriptionWords {
		return models.ValidationVerdict{
			Reason: fmt.Sprintf("Job description is too short (%d words, minimum %d required)", wordCount, MinJobDescriptionWords),
		}
	}

	hits := countHits(strings.ToLower(trimmed), jobDescriptionKeywords)

	matched := 0
	var absent []string
	for _, category := range scoredJobCategories {
		if hits[category] >= 1 {
			matched++
		} else {
			absent = append(absent, category)
		}
	}

	verdict := models.ValidationVerdict{
		IsValid:    matched >= minJobCategoryHits,
		Confidence: matched * jobCategoryWeight,
		Details:    hits,
	}
	if verdict.IsValid {
		verdict.Reason = "Text appears to be a job description"
	} else {
		verdict.Reason = "Text does not look like a job description: no " + strings.Join(absent, ", no ") + " keywords found"
	}
	return verdict
}
