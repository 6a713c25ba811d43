package analysis

import (
	"fmt"
	"strings"

	"github.com/resumeinsight/backend/models"
)

// potentialScoreGain is added to the current score when the model gives no projection
const potentialScoreGain = 12

var levelKeywords = []struct {
	level    string
	keywords []string
}{
	{models.LevelExcellent, []string{"excellent", "outstanding", "exceptional", "very strong", "great"}},
	{models.LevelGood, []string{"good", "strong", "above average", "solid"}},
	{models.LevelFair, []string{"fair", "average", "moderate", "okay", "satisfactory"}},
	{models.LevelPoor, []string{"poor", "needs improvement", "weak", "low", "bad", "needs work"}},
}

// MapATSLevel picks the ATS tier. Explicit text wins when it matches a tier's
// keywords, then the score bucket when a score is known, then Fair.
func MapATSLevel(explicit string, score int, hasScore bool) string {
	if text := strings.ToLower(strings.TrimSpace(explicit)); text != "" {
		for _, tier := range levelKeywords {
			for _, kw := range tier.keywords {
				if strings.Contains(text, kw) {
					return tier.level
				}
			}
		}
	}

	if !hasScore {
		return models.LevelFair
	}

	switch {
	case score >= 85:
		return models.LevelExcellent
	case score >= 70:
		return models.LevelGood
	case score >= 50:
		return models.LevelFair
	default:
		return models.LevelPoor
	}
}

// Normalize maps the model's JSON onto the fixed report shape. It never fails:
// missing or mistyped input degrades to defaults.
func Normalize(raw map[string]any) models.NormalizedAnalysis {
	if raw == nil {
		raw = map[string]any{}
	}
	shape := resolveShape(raw)

	atsScore, hasATSScore, atsLevel, atsExplanation := readATSScore(raw["atsScore"])
	quickFixes := shape.quickFixes()
	missingKeywords := shape.missingKeywords()

	n := models.NormalizedAnalysis{
		ATSScore: models.ATSScore{
			Score:       atsScore,
			Level:       MapATSLevel(atsLevel, atsScore, hasATSScore),
			Explanation: atsExplanation,
		},
		GrammarSpelling: shape.grammarIssues(),
		OverallSummary:  stringValue(raw["overallSummary"]),
		AIModel:         stringValue(raw["aiModel"]),
		ProcessedAt:     stringValue(raw["processedAt"]),
		ResponseShape:   shape.name(),
	}

	n.OverallScore = scoreOr(raw["overallScore"], atsScore)
	n.ReadabilityScore = scoreOr(raw["readabilityScore"], atsScore)
	n.FormatScore = scoreOr(raw["formatScore"], atsScore)
	if ms, ok := number(raw["processingTime"]); ok && ms > 0 {
		n.ProcessingTime = int64(ms)
	}

	atsAnalysis := object(raw["atsAnalysis"])
	keywordAnalysis := object(raw["keywordAnalysis"])

	n.ATSAnalysis = models.ATSAnalysis{
		KeywordMatchScore: scoreOr(atsAnalysis["keywordMatchScore"], 0),
		PresentKeywords:   firstSlice(atsAnalysis["presentKeywords"], keywordAnalysis["foundKeywords"]),
		MissingKeywords:   missingKeywords,
	}

	improvement := object(raw["atsImprovement"])
	estimate := object(improvement["estimatedImprovement"])
	n.ATSImprovement = models.ATSImprovement{
		MissingKeywords: missingKeywords,
		QuickFixes:      quickFixes,
		FormatWarnings:  shape.formatWarnings(),
		EstimatedImprovement: models.EstimatedImprovement{
			CurrentScore:   scoreOr(estimate["currentScore"], atsScore),
			PotentialScore: scoreOr(estimate["potentialScore"], min(atsScore+potentialScoreGain, 100)),
			Description:    stringValue(estimate["description"]),
		},
	}

	var ok bool
	if n.Strengths, ok = optionalSlice(raw["strengths"]); !ok {
		n.Strengths = firstN(quickFixes, 3)
	}
	if n.GrowthAreas, ok = optionalSlice(raw["growthAreas"]); !ok {
		n.GrowthAreas = append([]string{}, quickFixes...)
	}

	jobMatching := object(raw["jobMatching"])
	missingSkills := shape.skillGaps()
	n.JobMatching = models.JobMatching{
		MatchPercentage: scoreOr(jobMatching["matchPercentage"], 0),
		MatchingSkills:  firstSlice(jobMatching["matchingSkills"]),
		MissingSkills:   missingSkills,
		Recommendations: recommendations(jobMatching["recommendations"], missingSkills),
	}

	n.KeywordAnalysis = models.KeywordAnalysis{
		FoundKeywords:   firstSlice(keywordAnalysis["foundKeywords"], atsAnalysis["presentKeywords"]),
		MissingKeywords: firstSlice(keywordAnalysis["missingKeywords"], missingKeywords),
		KeywordDensity:  stringValue(keywordAnalysis["keywordDensity"]),
		Suggestions:     firstSlice(keywordAnalysis["suggestions"]),
	}

	insights := object(raw["recruiterInsights"])
	n.RecruiterInsights = models.RecruiterInsights{
		FirstImpression: stringValue(insights["firstImpression"]),
		RedFlags:        firstSlice(insights["redFlags"]),
		StandoutPoints:  firstSlice(insights["standoutPoints"]),
	}

	prep := object(raw["interviewPrep"])
	n.InterviewPrep = models.InterviewPrep{
		LikelyQuestions: firstSlice(prep["likelyQuestions"], prep["questions"]),
		TalkingPoints:   firstSlice(prep["talkingPoints"]),
	}

	if n.OverallSummary == "" {
		n.OverallSummary = fmt.Sprintf(
			"Your resume scored %d/100 for ATS compatibility. We found %d quick fixes that could improve your score.",
			atsScore, len(quickFixes))
	}

	return n
}

// readATSScore accepts {score, level, explanation} or a bare number
func readATSScore(v any) (value int, hasScore bool, level, explanation string) {
	if obj, ok := v.(map[string]any); ok {
		value, hasScore = readScore(obj["score"])
		return value, hasScore, stringValue(obj["level"]), stringValue(obj["explanation"])
	}
	value, hasScore = readScore(v)
	return value, hasScore, "", ""
}

func scoreOr(v any, fallback int) int {
	if s, ok := readScore(v); ok {
		return s
	}
	return clampScore(float64(fallback))
}

func recommendations(v any, missingSkills []string) string {
	switch r := v.(type) {
	case string:
		if s := strings.TrimSpace(r); s != "" {
			return s
		}
	case []any:
		if items := stringSlice(r); len(items) > 0 {
			return strings.Join(items, " ")
		}
	}
	return strings.Join(missingSkills, ", ")
}

// optionalSlice reads an array field; ok is false when the field is absent or not a list
func optionalSlice(v any) ([]string, bool) {
	switch v.(type) {
	case []any, []string:
		return stringSlice(v), true
	}
	return nil, false
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}
