package analysis

import (
	"fmt"
	"strings"

	"github.com/resumeinsight/backend/gemini"
)

const responseSchema = `{
  "personalInfo": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "website": ""},
  "summary": "Professional summary",
  "skills": {"technical": [], "soft": [], "languages": [], "tools": []},
  "experience": [{"title": "", "company": "", "location": "", "startDate": "", "endDate": "", "responsibilities": []}],
  "education": [{"degree": "", "field": "", "institution": "", "graduationDate": "", "gpa": ""}],
  "certifications": [],
  "overallScore": 0,
  "atsScore": {"score": 0, "level": "Excellent|Good|Fair|Poor", "explanation": ""},
  "atsAnalysis": {"keywordMatchScore": 0, "presentKeywords": [], "missingKeywords": []},
  "readabilityScore": 0,
  "formatScore": 0,
  "atsImprovement": {
    "missingKeywords": [],
    "quickFixes": [],
    "formatWarnings": [],
    "estimatedImprovement": {"currentScore": 0, "potentialScore": 0, "description": ""}
  },
  "grammarSpelling": [{"issue": "", "suggestion": "", "location": ""}],
  "strengths": [],
  "growthAreas": [],
  "recruiterInsights": {"firstImpression": "", "redFlags": [], "standoutPoints": []},
  "jobMatching": {"matchPercentage": 0, "matchingSkills": [], "missingSkills": [], "recommendations": ""},
  "keywordAnalysis": {"foundKeywords": [], "missingKeywords": [], "keywordDensity": "", "suggestions": []},
  "interviewPrep": {"likelyQuestions": [], "talkingPoints": []},
  "overallSummary": ""
}`

// BuildRequest embeds the role, optional job description and resume text into the
// analysis instructions. An empty job description leaves its section out.
func BuildRequest(cleanedText, targetRole, jobDescription string, genCfg gemini.GenerationConfig) gemini.Request {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are an expert recruiter and ATS (applicant tracking system) specialist.\n")
	fmt.Fprintf(&sb, "Analyze the resume below for the target role %q.\n\n", strings.TrimSpace(targetRole))

	if jd := strings.TrimSpace(jobDescription); jd != "" {
		fmt.Fprintf(&sb, "Compare the resume against this job description and base jobMatching on it:\n")
		fmt.Fprintf(&sb, "JOB DESCRIPTION:\n%s\n\n", jd)
	}

	sb.WriteString("Return a JSON object with exactly this structure:\n")
	sb.WriteString(responseSchema)
	sb.WriteString(`

Rules:
- All scores are integers from 0 to 100.
- atsScore.level must be one of Excellent, Good, Fair, Poor.
- quickFixes are short, concrete edits the candidate can make today.
- Use empty strings or empty arrays for missing data, never null.

RESUME TEXT:
`)
	sb.WriteString(cleanedText)
	sb.WriteString("\n\nReturn ONLY the JSON object, no markdown formatting, no explanation.")

	return gemini.Request{
		Prompt:           sb.String(),
		GenerationConfig: genCfg,
	}
}
