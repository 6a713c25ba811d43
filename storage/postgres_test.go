package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/resumeinsight/backend/models"
)

func sampleRecord() *models.AnalysisRecord {
	uploaded := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	analyzed := uploaded.Add(40 * time.Second)
	return &models.AnalysisRecord{
		ID:                 "0b6f6d2e-6a8e-4a53-9a55-3f2f1c7d8e90",
		UserID:             "jane@example.com",
		FileName:           "jane.pdf",
		MediaType:          "application/pdf",
		FileSize:           48213,
		TargetRole:         "Backend Engineer",
		JobDescription:     "We are hiring a backend engineer",
		ExtractedText:      "Jane Doe\nExperience",
		ExtractionStrategy: "Standard",
		ResumeValidation: models.ValidationVerdict{
			IsValid:    true,
			Confidence: 90,
			Reason:     "resume sections found",
			Details:    map[string]int{"sections": 4},
		},
		Resume: &models.ResumeProfile{
			PersonalInfo: models.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
		},
		AIAnalysis: &models.NormalizedAnalysis{
			OverallScore:    81,
			ATSScore:        models.ATSScore{Score: 78, Level: "good"},
			GrammarSpelling: []models.GrammarIssue{{Issue: "typo"}},
			Strengths:       []string{"clear impact"},
		},
		ProcessingStatus: models.StatusCompleted,
		ProcessingErrors: []models.ProcessingError{
			{Stage: models.StageAnalysis, Message: "upstream 503", Timestamp: uploaded.Add(10 * time.Second)},
		},
		UploadedAt:  uploaded,
		AnalyzedAt:  &analyzed,
		LastUpdated: analyzed,
	}
}

func TestAnalysisRowRoundTrip(t *testing.T) {
	want := sampleRecord()

	row := rowFromRecord(want)
	if row.ProcessingStatus != "completed" {
		t.Errorf("row.ProcessingStatus = %q", row.ProcessingStatus)
	}

	if diff := cmp.Diff(want, row.record()); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalysisRowKeepsPendingRecordsEmpty(t *testing.T) {
	want := &models.AnalysisRecord{
		ID:               "2c1d",
		UserID:           "u",
		ExtractedText:    "text",
		ProcessingStatus: models.StatusTextExtracted,
		ProcessingErrors: []models.ProcessingError{},
		UploadedAt:       time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
	}

	got := rowFromRecord(want).record()
	if got.AIAnalysis != nil || got.Resume != nil || got.AnalyzedAt != nil {
		t.Errorf("pending record gained results: %+v", got)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestTrimPage(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		limit    int
		want     []int
		wantMore bool
	}{
		{"empty", nil, 2, nil, false},
		{"short page", []int{1}, 2, []int{1}, false},
		{"exact page", []int{1, 2}, 2, []int{1, 2}, false},
		{"look-ahead item present", []int{1, 2, 3}, 2, []int{1, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, more := trimPage(tt.items, tt.limit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("page mismatch (-want +got):\n%s", diff)
			}
			if more != tt.wantMore {
				t.Errorf("hasMore = %v, want %v", more, tt.wantMore)
			}
		})
	}
}

func TestListAnalysesQueryReadsOneExtraRow(t *testing.T) {
	// DryRun never touches the server, so no database is needed
	db, err := gorm.Open(postgres.Open("host=localhost user=resumeinsight dbname=resumeinsight sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []analysisRow
		return listAnalysesQuery(tx, "jane@example.com", 20, 10).Find(&rows)
	})

	for _, want := range []string{`FROM "analyses"`, "user_id = 'jane@example.com'", "ORDER BY uploaded_at DESC", "LIMIT 11", "OFFSET 20"} {
		if !strings.Contains(sql, want) {
			t.Errorf("query %q does not contain %q", sql, want)
		}
	}
}
