package validation

import (
	"strings"
	"testing"
)

// filler returns n words that match no keyword in any category
func filler(n int) []string {
	out := make([]string, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = "lorem"
		} else {
			out[i] = "ipsum"
		}
	}
	return out
}

func withKeywords(total int, keywords ...string) string {
	words := append(append([]string{}, keywords...), filler(total-len(keywords))...)
	return strings.Join(words, " ")
}

func TestValidateResumeWordBoundary(t *testing.T) {
	keywords := []string{"Experience", "Education", "University"}

	short := ValidateResume(withKeywords(99, keywords...))
	if short.IsValid {
		t.Fatal("99 words should be invalid")
	}
	if short.Confidence != 0 {
		t.Errorf("Confidence = %d, want 0", short.Confidence)
	}
	if !strings.Contains(short.Reason, "99 words") {
		t.Errorf("Reason = %q, want word count", short.Reason)
	}

	exact := ValidateResume(withKeywords(100, keywords...))
	if !exact.IsValid {
		t.Fatalf("100 words with sections and education should be valid: %+v", exact)
	}
	if exact.Confidence != 70 {
		t.Errorf("Confidence = %d, want 70", exact.Confidence)
	}
}

func TestValidateResumeConfidence(t *testing.T) {
	tests := []struct {
		name       string
		keywords   []string
		valid      bool
		confidence int
		reason     []string
	}{
		{
			name:       "full resume",
			keywords:   []string{"experience", "skills", "engineer", "jane@example.com", "python"},
			valid:      true,
			confidence: 100,
		},
		{
			name:       "sections only",
			keywords:   []string{"summary", "projects"},
			valid:      false,
			confidence: 40,
			reason:     []string{"no education or work history found", "no contact information found"},
		},
		{
			name:       "work and contact without sections",
			keywords:   []string{"developer", "linkedin"},
			valid:      false,
			confidence: 50,
			reason:     []string{"missing common resume sections"},
		},
		{
			name:       "nothing recognizable",
			keywords:   nil,
			valid:      false,
			confidence: 0,
			reason:     []string{"missing common resume sections", "no education or work history found", "no contact information found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateResume(withKeywords(150, tt.keywords...))
			if got.IsValid != tt.valid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tt.valid)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("Confidence = %d, want %d", got.Confidence, tt.confidence)
			}
			for _, r := range tt.reason {
				if !strings.Contains(got.Reason, r) {
					t.Errorf("Reason %q missing %q", got.Reason, r)
				}
			}
		})
	}
}

func TestValidateResumeReasonOrder(t *testing.T) {
	got := ValidateResume(withKeywords(120))
	sections := strings.Index(got.Reason, "sections")
	work := strings.Index(got.Reason, "work history")
	contact := strings.Index(got.Reason, "contact")
	if !(sections < work && work < contact) {
		t.Errorf("unexpected reason order: %q", got.Reason)
	}
}

func TestValidateResumeEmpty(t *testing.T) {
	got := ValidateResume("   \n ")
	if got.IsValid || got.Confidence != 0 || !got.IsEmpty {
		t.Errorf("ValidateResume(blank) = %+v", got)
	}
}

func TestValidateJobDescriptionEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		got := ValidateJobDescription(in)
		if !got.IsValid || !got.IsEmpty || got.Confidence != 0 {
			t.Errorf("ValidateJobDescription(%q) = %+v, want valid, empty, confidence 0", in, got)
		}
	}
}

func TestValidateJobDescription(t *testing.T) {
	tests := []struct {
		name       string
		words      int
		keywords   []string
		valid      bool
		confidence int
	}{
		{"too short", 49, []string{"requirements", "responsibilities"}, false, 0},
		{"two categories", 50, []string{"requirements", "responsibilities"}, true, 50},
		{"all categories", 80, []string{"opportunity", "qualifications", "duties", "expertise"}, true, 100},
		{"one category", 80, []string{"requirements"}, false, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateJobDescription(withKeywords(tt.words, tt.keywords...))
			if got.IsValid != tt.valid {
				t.Errorf("IsValid = %v, want %v (%s)", got.IsValid, tt.valid, got.Reason)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("Confidence = %d, want %d", got.Confidence, tt.confidence)
			}
		})
	}
}

// Work keywords are collected but never count toward confidence or validity.
func TestValidateJobDescriptionIgnoresWorkCategory(t *testing.T) {
	text := withKeywords(80, "requirements", "remote", "salary", "full-time", "benefits")

	got := ValidateJobDescription(text)
	if got.Details[CategoryWork] != 4 {
		t.Errorf("Details[work] = %d, want 4", got.Details[CategoryWork])
	}
	if got.IsValid {
		t.Error("work keywords must not satisfy the two-category gate")
	}
	if got.Confidence != 25 {
		t.Errorf("Confidence = %d, want 25", got.Confidence)
	}
}
