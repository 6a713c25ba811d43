package validation

import "strings"

// Keyword categories
const (
	CategorySections         = "sections"
	CategoryEducation        = "education"
	CategoryContact          = "contact"
	CategoryWork             = "work"
	CategoryTechnical        = "technical"
	CategoryPosting          = "posting"
	CategoryRequirements     = "requirements"
	CategoryResponsibilities = "responsibilities"
	CategorySkills           = "skills"
)

var resumeKeywords = map[string][]string{
	CategorySections: {
		"experience", "education", "skills", "summary", "objective", "work history",
		"employment", "projects", "certifications", "qualifications", "achievements",
		"professional experience", "profile", "references", "awards",
	},
	CategoryEducation: {
		"university", "college", "bachelor", "master", "degree", "diploma", "phd",
		"b.sc", "m.sc", "gpa", "graduated", "school", "institute", "coursework",
	},
	CategoryContact: {
		"email", "e-mail", "phone", "mobile", "linkedin", "github", "@", "address",
		"contact", "portfolio", "tel:",
	},
	CategoryWork: {
		"manager", "engineer", "developer", "analyst", "intern", "consultant",
		"company", "responsibilities", "led", "managed", "developed", "designed",
		"implemented", "present", "worked",
	},
	CategoryTechnical: {
		"python", "java", "javascript", "golang", "sql", "react", "aws", "docker",
		"kubernetes", "excel", "git", "linux", "api", "cloud", "machine learning",
	},
}

var jobDescriptionKeywords = map[string][]string{
	CategoryPosting: {
		"job description", "we are looking", "we are hiring", "join our", "position",
		"role", "opportunity", "about the job", "about us", "apply", "candidate",
	},
	CategoryRequirements: {
		"requirements", "qualifications", "required", "must have", "years of experience",
		"preferred", "degree in", "minimum", "nice to have",
	},
	CategoryResponsibilities: {
		"responsibilities", "you will", "duties", "what you'll do", "responsible for",
		"day-to-day", "own the", "collaborate with",
	},
	CategorySkills: {
		"skills", "proficiency", "experience with", "knowledge of", "familiarity with",
		"expertise", "communication", "problem-solving",
	},
	CategoryWork: {
		"full-time", "part-time", "remote", "hybrid", "on-site", "salary", "benefits",
		"contract", "location",
	},
}

// countHits counts, per category, how many keywords occur in the lowercased text.
// Each keyword counts at most once.
func countHits(lowered string, categories map[string][]string) map[string]int {
	hits := make(map[string]int, len(categories))
	for category, keywords := range categories {
		n := 0
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				n++
			}
		}
		hits[category] = n
	}
	return hits
}
