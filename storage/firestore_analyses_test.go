package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/models"
)

// newEmulatorClient connects to the Firestore emulator named by
// FIRESTORE_EMULATOR_HOST and skips the test when none is running
func newEmulatorClient(t *testing.T) *FirestoreClient {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := NewFirestoreClient(context.Background(), &config.Config{ProjectID: "resumeinsight-test"})
	if err != nil {
		t.Fatalf("NewFirestoreClient() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestFirestoreAnalysisLifecycle(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	userID := "firestore-" + time.Now().Format("150405.000000")

	want := sampleRecord()
	want.ID = ""
	want.UserID = userID
	if err := client.CreateAnalysis(ctx, want); err != nil {
		t.Fatalf("CreateAnalysis() error = %v", err)
	}
	if want.ID == "" {
		t.Fatal("CreateAnalysis() did not assign an ID")
	}

	got, err := client.GetAnalysis(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetAnalysis() error = %v", err)
	}
	opts := cmp.Options{cmpopts.EquateEmpty(), cmpopts.EquateApproxTime(time.Millisecond)}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}

	if err := client.DeleteAnalysis(ctx, want.ID); err != nil {
		t.Fatalf("DeleteAnalysis() error = %v", err)
	}
	if _, err := client.GetAnalysis(ctx, want.ID); !errors.Is(err, ErrAnalysisNotFound) {
		t.Errorf("GetAnalysis() after delete err = %v, want ErrAnalysisNotFound", err)
	}
}

func TestFirestoreListAnalysesPaging(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	userID := "paging-" + time.Now().Format("150405.000000")

	base := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		record := &models.AnalysisRecord{
			UserID:           userID,
			ExtractedText:    "text",
			ProcessingStatus: models.StatusTextExtracted,
			UploadedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		if err := client.CreateAnalysis(ctx, record); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, record.ID)
	}

	first, more, err := client.ListAnalyses(ctx, userID, 0, 2)
	if err != nil {
		t.Fatalf("ListAnalyses() error = %v", err)
	}
	var got []string
	for _, r := range first {
		got = append(got, r.ID)
	}
	// newest first
	if diff := cmp.Diff([]string{ids[2], ids[1]}, got); diff != "" {
		t.Errorf("page 1 mismatch (-want +got):\n%s", diff)
	}
	if !more {
		t.Error("page 1 should report more results")
	}

	second, more, err := client.ListAnalyses(ctx, userID, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 1 || second[0].ID != ids[0] || more {
		t.Errorf("page 2 = %d records, hasMore=%v", len(second), more)
	}
}
