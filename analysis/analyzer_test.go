package analysis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/gemini"
	"github.com/resumeinsight/backend/utils"
)

type fakeGenerator struct {
	reply string
	err   error
	last  gemini.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req gemini.Request) (string, error) {
	f.last = req
	return f.reply, f.err
}

func (f *fakeGenerator) Model() string { return "gemini-fake" }
func (f *fakeGenerator) Close() error  { return nil }

func newTestAnalyzer(gen gemini.Generator) *Analyzer {
	a := NewAnalyzer(gen, &config.Config{GeminiTemperature: 0.2, GeminiMaxOutputTokens: 2048})
	clock := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	a.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}
	return a
}

const modelReply = "```json\n" + `{
  "personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
  "summary": "Backend engineer",
  "skills": {"technical": ["Go", "PostgreSQL"], "soft": "Mentoring"},
  "experience": [{"title": "Engineer", "company": "Acme", "responsibilities": ["Built APIs"]}],
  "education": [{"degree": "BSc", "institution": "State University"}],
  "atsScore": {"score": 78, "explanation": "Good structure"},
  "atsImprovement": {"quickFixes": ["Add metrics"], "missingKeywords": ["Kubernetes"]}
}` + "\n```"

func TestAnalyze(t *testing.T) {
	gen := &fakeGenerator{reply: modelReply}
	a := newTestAnalyzer(gen)

	result, err := a.Analyze(context.Background(), "resume text", "Backend Engineer", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	got := result.Analysis
	if got.ATSScore.Score != 78 || got.ATSScore.Level != "Good" {
		t.Errorf("ATSScore = %+v", got.ATSScore)
	}
	if got.AIModel != "gemini-fake" {
		t.Errorf("AIModel = %q", got.AIModel)
	}
	if got.ProcessingTime != 250 {
		t.Errorf("ProcessingTime = %d, want 250", got.ProcessingTime)
	}
	if got.ProcessedAt == "" {
		t.Error("ProcessedAt not stamped")
	}
	if result.Resume.PersonalInfo.Name != "Jane Doe" || len(result.Resume.Skills.Technical) != 2 {
		t.Errorf("Resume = %+v", result.Resume)
	}
	if len(result.Resume.Skills.Soft) != 1 || result.Resume.Certifications == nil {
		t.Errorf("Resume skills/certifications = %+v", result.Resume)
	}

	if gen.last.GenerationConfig.Temperature != 0.2 || gen.last.GenerationConfig.MaxOutputTokens != 2048 {
		t.Errorf("GenerationConfig = %+v", gen.last.GenerationConfig)
	}
	if strings.Contains(gen.last.Prompt, "JOB DESCRIPTION") {
		t.Error("prompt should omit the job description section when none is given")
	}
	if !strings.Contains(gen.last.Prompt, `"Backend Engineer"`) || !strings.Contains(gen.last.Prompt, "resume text") {
		t.Error("prompt should embed the role and resume text")
	}
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	gen := &fakeGenerator{reply: `{"atsScore": 50}`}
	a := newTestAnalyzer(gen)

	if _, err := a.Analyze(context.Background(), "resume", "SRE", "Run our Kubernetes fleet"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.last.Prompt, "JOB DESCRIPTION:\nRun our Kubernetes fleet") {
		t.Error("prompt should include the job description")
	}
}

func TestRunAnalysisMalformed(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{reply: "Sorry, I can't help with that."})

	got, err := a.RunAnalysis(context.Background(), "resume", "Engineer")
	if got != nil {
		t.Errorf("RunAnalysis() = %+v, want nil", got)
	}
	if !utils.IsKind(err, utils.KindMalformedModelResponse) {
		t.Errorf("error = %v, want MalformedModelResponse", err)
	}
}

func TestRunAnalysisPropagatesUpstreamError(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{err: utils.NewUpstreamServiceError(503, "unavailable", nil)})

	_, err := a.RunAnalysis(context.Background(), "resume", "Engineer")
	if !utils.IsKind(err, utils.KindUpstreamServiceError) {
		t.Errorf("error = %v, want UpstreamServiceError", err)
	}
}
