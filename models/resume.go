package models

import "encoding/json"

// FlexibleStringSlice can unmarshal from either a string or []string
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// Anything else (objects, numbers) degrades to empty
	*f = []string{}
	return nil
}

// ResumeProfile is the structured resume content returned by the analysis model.
// It is stored on an AnalysisRecord only after analysis succeeds.
type ResumeProfile struct {
	PersonalInfo   PersonalInfo        `json:"personalInfo" firestore:"personalInfo"`
	Summary        string              `json:"summary,omitempty" firestore:"summary"`
	Skills         SkillSet            `json:"skills" firestore:"skills"`
	Experience     []WorkExperience    `json:"experience" firestore:"experience"`
	Education      []Education         `json:"education" firestore:"education"`
	Certifications FlexibleStringSlice `json:"certifications" firestore:"certifications"`
}

// PersonalInfo holds contact details found in the resume
type PersonalInfo struct {
	Name     string `json:"name,omitempty" firestore:"name"`
	Email    string `json:"email,omitempty" firestore:"email"`
	Phone    string `json:"phone,omitempty" firestore:"phone"`
	Location string `json:"location,omitempty" firestore:"location"`
	LinkedIn string `json:"linkedin,omitempty" firestore:"linkedin"`
	Website  string `json:"website,omitempty" firestore:"website"`
}

// SkillSet groups skills the way the analysis prompt asks for them
type SkillSet struct {
	Technical FlexibleStringSlice `json:"technical" firestore:"technical"`
	Soft      FlexibleStringSlice `json:"soft" firestore:"soft"`
	Languages FlexibleStringSlice `json:"languages" firestore:"languages"`
	Tools     FlexibleStringSlice `json:"tools" firestore:"tools"`
}

// UnmarshalJSON accepts either the grouped object or a flat list of skills
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	type grouped SkillSet
	var g grouped
	if err := json.Unmarshal(data, &g); err == nil {
		*s = SkillSet(g)
		return nil
	}

	var flat FlexibleStringSlice
	_ = json.Unmarshal(data, &flat)
	*s = SkillSet{Technical: flat}
	return nil
}

// WorkExperience represents past work experience
type WorkExperience struct {
	Title            string              `json:"title,omitempty" firestore:"title"`
	Company          string              `json:"company,omitempty" firestore:"company"`
	Location         string              `json:"location,omitempty" firestore:"location"`
	StartDate        string              `json:"startDate,omitempty" firestore:"startDate"`
	EndDate          string              `json:"endDate,omitempty" firestore:"endDate"`
	Description      string              `json:"description,omitempty" firestore:"description"`
	Responsibilities FlexibleStringSlice `json:"responsibilities,omitempty" firestore:"responsibilities"`
}

// Education represents educational background
type Education struct {
	Degree         string `json:"degree,omitempty" firestore:"degree"`
	Field          string `json:"field,omitempty" firestore:"field"`
	Institution    string `json:"institution,omitempty" firestore:"institution"`
	GraduationDate string `json:"graduationDate,omitempty" firestore:"graduationDate"`
	GPA            string `json:"gpa,omitempty" firestore:"gpa"`
}

// Normalize replaces nil slices so the profile always serializes arrays
func (p *ResumeProfile) Normalize() {
	if p.Skills.Technical == nil {
		p.Skills.Technical = FlexibleStringSlice{}
	}
	if p.Skills.Soft == nil {
		p.Skills.Soft = FlexibleStringSlice{}
	}
	if p.Skills.Languages == nil {
		p.Skills.Languages = FlexibleStringSlice{}
	}
	if p.Skills.Tools == nil {
		p.Skills.Tools = FlexibleStringSlice{}
	}
	if p.Experience == nil {
		p.Experience = []WorkExperience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Certifications == nil {
		p.Certifications = FlexibleStringSlice{}
	}
}
