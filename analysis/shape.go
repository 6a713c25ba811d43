package analysis

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/resumeinsight/backend/models"
)

const currentShapeSchema = `{
  "type": "object",
  "anyOf": [
    {"required": ["atsAnalysis"], "properties": {"atsAnalysis": {"type": "object"}}},
    {"required": ["atsImprovement"], "properties": {"atsImprovement": {"type": "object"}}}
  ]
}`

const legacyShapeSchema = `{
  "type": "object",
  "anyOf": [
    {"required": ["quickFixes"], "properties": {"quickFixes": {"type": "array"}}},
    {"required": ["missingKeywords"], "properties": {"missingKeywords": {"type": "array"}}},
    {"required": ["formatWarnings"], "properties": {"formatWarnings": {"type": "array"}}},
    {"required": ["grammarIssues"], "properties": {"grammarIssues": {"type": "array"}}},
    {"required": ["skillGaps"], "properties": {"skillGaps": {"type": "array"}}}
  ]
}`

var (
	currentSchema = mustCompileSchema("current.json", currentShapeSchema)
	legacySchema  = mustCompileSchema("legacy.json", legacyShapeSchema)
)

func mustCompileSchema(name, source string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(source)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}

// modelShape reads the fields whose location differs between response shapes.
// Every other field is read the same way regardless of shape.
type modelShape interface {
	name() string
	missingKeywords() []string
	quickFixes() []string
	formatWarnings() []string
	grammarIssues() []models.GrammarIssue
	skillGaps() []string
}

// resolveShape picks the reader for a response once, before any field is read
func resolveShape(raw map[string]any) modelShape {
	legacy := legacyShape{raw: raw}
	if currentSchema.Validate(raw) == nil {
		return currentShape{raw: raw, fallback: legacy}
	}
	if legacySchema.Validate(raw) == nil {
		return legacy
	}
	return unknownShape{legacy}
}

// legacyShape is the older simplified response with the five
// feature arrays at the top level
type legacyShape struct {
	raw map[string]any
}

func (s legacyShape) name() string              { return models.ShapeLegacy }
func (s legacyShape) missingKeywords() []string { return stringSlice(s.raw["missingKeywords"]) }
func (s legacyShape) quickFixes() []string      { return stringSlice(s.raw["quickFixes"]) }
func (s legacyShape) formatWarnings() []string  { return stringSlice(s.raw["formatWarnings"]) }

// grammarSpelling and jobMatching.missingSkills sit in the same place in every
// shape, so all variants read them here and fall back to the simplified keys
func (s legacyShape) grammarIssues() []models.GrammarIssue {
	if v, ok := s.raw["grammarSpelling"].([]any); ok {
		return grammarList(v)
	}
	return grammarList(s.raw["grammarIssues"])
}

func (s legacyShape) skillGaps() []string {
	if v, ok := arrayAt(s.raw, "jobMatching", "missingSkills"); ok {
		return stringSlice(v)
	}
	return stringSlice(s.raw["skillGaps"])
}

// currentShape nests the feature arrays under atsAnalysis and atsImprovement.
// A field it lacks is read from the legacy location instead.
type currentShape struct {
	raw      map[string]any
	fallback legacyShape
}

func (s currentShape) name() string { return models.ShapeCurrent }

func (s currentShape) missingKeywords() []string {
	if v, ok := arrayAt(s.raw, "atsImprovement", "missingKeywords"); ok {
		return stringSlice(v)
	}
	if v, ok := arrayAt(s.raw, "atsAnalysis", "missingKeywords"); ok {
		return stringSlice(v)
	}
	return s.fallback.missingKeywords()
}

func (s currentShape) quickFixes() []string {
	if v, ok := arrayAt(s.raw, "atsImprovement", "quickFixes"); ok {
		return stringSlice(v)
	}
	return s.fallback.quickFixes()
}

func (s currentShape) formatWarnings() []string {
	if v, ok := arrayAt(s.raw, "atsImprovement", "formatWarnings"); ok {
		return stringSlice(v)
	}
	return s.fallback.formatWarnings()
}

func (s currentShape) grammarIssues() []models.GrammarIssue { return s.fallback.grammarIssues() }
func (s currentShape) skillGaps() []string                  { return s.fallback.skillGaps() }

// unknownShape matched neither schema; it reads the legacy locations,
// which yield empty values for anything absent
type unknownShape struct {
	legacyShape
}

func (s unknownShape) name() string { return models.ShapeUnknown }

// arrayAt returns obj[key][field] when it is an array
func arrayAt(obj map[string]any, key, field string) ([]any, bool) {
	nested, ok := obj[key].(map[string]any)
	if !ok {
		return nil, false
	}
	arr, ok := nested[field].([]any)
	return arr, ok
}

func grammarList(v any) []models.GrammarIssue {
	items, _ := v.([]any)
	issues := make([]models.GrammarIssue, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case map[string]any:
			issue := models.GrammarIssue{
				Issue:      stringValue(it["issue"]),
				Suggestion: stringValue(it["suggestion"]),
				Location:   stringValue(it["location"]),
			}
			if issue.Issue == "" {
				issue.Issue = stringValue(it["text"])
			}
			if issue.Issue != "" || issue.Suggestion != "" {
				issues = append(issues, issue)
			}
		case string:
			if s := strings.TrimSpace(it); s != "" {
				issues = append(issues, models.GrammarIssue{Issue: s})
			}
		}
	}
	return issues
}
