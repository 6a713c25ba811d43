package models

// ATS level tiers
const (
	LevelExcellent = "Excellent"
	LevelGood      = "Good"
	LevelFair      = "Fair"
	LevelPoor      = "Poor"
)

// Response shapes the analysis model has been seen to return
const (
	ShapeCurrent = "current"
	ShapeLegacy  = "legacy"
	ShapeUnknown = "unknown"
)

// NormalizedAnalysis is the fixed-shape report built from the model's JSON.
// Scores are always in [0,100] and slices are never nil.
type NormalizedAnalysis struct {
	OverallScore      int               `json:"overallScore" firestore:"overallScore"`
	ATSScore          ATSScore          `json:"atsScore" firestore:"atsScore"`
	ATSAnalysis       ATSAnalysis       `json:"atsAnalysis" firestore:"atsAnalysis"`
	ReadabilityScore  int               `json:"readabilityScore" firestore:"readabilityScore"`
	FormatScore       int               `json:"formatScore" firestore:"formatScore"`
	ATSImprovement    ATSImprovement    `json:"atsImprovement" firestore:"atsImprovement"`
	GrammarSpelling   []GrammarIssue    `json:"grammarSpelling" firestore:"grammarSpelling"`
	Strengths         []string          `json:"strengths" firestore:"strengths"`
	GrowthAreas       []string          `json:"growthAreas" firestore:"growthAreas"`
	JobMatching       JobMatching       `json:"jobMatching" firestore:"jobMatching"`
	KeywordAnalysis   KeywordAnalysis   `json:"keywordAnalysis" firestore:"keywordAnalysis"`
	RecruiterInsights RecruiterInsights `json:"recruiterInsights" firestore:"recruiterInsights"`
	InterviewPrep     InterviewPrep     `json:"interviewPrep" firestore:"interviewPrep"`
	OverallSummary    string            `json:"overallSummary" firestore:"overallSummary"`
	AIModel           string            `json:"aiModel" firestore:"aiModel"`
	ProcessedAt       string            `json:"processedAt" firestore:"processedAt"`
	ProcessingTime    int64             `json:"processingTime" firestore:"processingTime"`
	ResponseShape     string            `json:"responseShape" firestore:"responseShape"`
}

// ATSScore is the headline applicant-tracking-system compatibility score
type ATSScore struct {
	Score       int    `json:"score" firestore:"score"`
	Level       string `json:"level" firestore:"level"`
	Explanation string `json:"explanation" firestore:"explanation"`
}

// ATSAnalysis lists keyword coverage
type ATSAnalysis struct {
	KeywordMatchScore int      `json:"keywordMatchScore" firestore:"keywordMatchScore"`
	PresentKeywords   []string `json:"presentKeywords" firestore:"presentKeywords"`
	MissingKeywords   []string `json:"missingKeywords" firestore:"missingKeywords"`
}

// ATSImprovement holds actionable fixes
type ATSImprovement struct {
	MissingKeywords      []string             `json:"missingKeywords" firestore:"missingKeywords"`
	QuickFixes           []string             `json:"quickFixes" firestore:"quickFixes"`
	FormatWarnings       []string             `json:"formatWarnings" firestore:"formatWarnings"`
	EstimatedImprovement EstimatedImprovement `json:"estimatedImprovement" firestore:"estimatedImprovement"`
}

// EstimatedImprovement projects the score after fixes
type EstimatedImprovement struct {
	CurrentScore   int    `json:"currentScore" firestore:"currentScore"`
	PotentialScore int    `json:"potentialScore" firestore:"potentialScore"`
	Description    string `json:"description" firestore:"description"`
}

// GrammarIssue is one grammar or spelling finding
type GrammarIssue struct {
	Issue      string `json:"issue" firestore:"issue"`
	Suggestion string `json:"suggestion" firestore:"suggestion"`
	Location   string `json:"location" firestore:"location"`
}

// JobMatching compares the resume against the target role
type JobMatching struct {
	MatchPercentage int      `json:"matchPercentage" firestore:"matchPercentage"`
	MatchingSkills  []string `json:"matchingSkills" firestore:"matchingSkills"`
	MissingSkills   []string `json:"missingSkills" firestore:"missingSkills"`
	Recommendations string   `json:"recommendations" firestore:"recommendations"`
}

// KeywordAnalysis summarizes keyword usage
type KeywordAnalysis struct {
	FoundKeywords   []string `json:"foundKeywords" firestore:"foundKeywords"`
	MissingKeywords []string `json:"missingKeywords" firestore:"missingKeywords"`
	KeywordDensity  string   `json:"keywordDensity" firestore:"keywordDensity"`
	Suggestions     []string `json:"suggestions" firestore:"suggestions"`
}

// RecruiterInsights is how a recruiter would likely read the resume
type RecruiterInsights struct {
	FirstImpression string   `json:"firstImpression" firestore:"firstImpression"`
	RedFlags        []string `json:"redFlags" firestore:"redFlags"`
	StandoutPoints  []string `json:"standoutPoints" firestore:"standoutPoints"`
}

// InterviewPrep suggests interview preparation material
type InterviewPrep struct {
	LikelyQuestions []string `json:"likelyQuestions" firestore:"likelyQuestions"`
	TalkingPoints   []string `json:"talkingPoints" firestore:"talkingPoints"`
}
