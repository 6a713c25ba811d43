package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/resumeinsight/backend/models"
)

const analysesCollection = "analyses"

// CreateAnalysis stores a new record under a fresh UUID
func (f *FirestoreClient) CreateAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	id := uuid.New().String()
	if record.LastUpdated.IsZero() {
		record.LastUpdated = time.Now()
	}

	if _, err := f.client.Collection(analysesCollection).Doc(id).Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	record.ID = id
	return nil
}

// GetAnalysis retrieves one record
func (f *FirestoreClient) GetAnalysis(ctx context.Context, id string) (*models.AnalysisRecord, error) {
	doc, err := f.client.Collection(analysesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return analysisFromDoc(doc)
}

// UpdateAnalysis overwrites a stored record
func (f *FirestoreClient) UpdateAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	docRef := f.client.Collection(analysesCollection).Doc(record.ID)
	if _, err := docRef.Set(ctx, record); err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	return nil
}

// ListAnalyses returns one page of a user's records, newest first
func (f *FirestoreClient) ListAnalyses(ctx context.Context, userID string, offset, limit int) ([]*models.AnalysisRecord, bool, error) {
	// one extra document tells whether another page exists
	iter := f.client.Collection(analysesCollection).
		Where("userId", "==", userID).
		OrderBy("uploadedAt", firestore.Desc).
		Offset(offset).
		Limit(limit + 1).
		Documents(ctx)

	docs, err := iter.GetAll()
	if err != nil {
		return nil, false, fmt.Errorf("failed to list analyses: %w", err)
	}

	docs, hasMore := trimPage(docs, limit)
	records := make([]*models.AnalysisRecord, 0, len(docs))
	for _, doc := range docs {
		record, err := analysisFromDoc(doc)
		if err != nil {
			return nil, false, err
		}
		records = append(records, record)
	}
	return records, hasMore, nil
}

// DeleteAnalysis removes a record
func (f *FirestoreClient) DeleteAnalysis(ctx context.Context, id string) error {
	if _, err := f.client.Collection(analysesCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}

func analysisFromDoc(doc *firestore.DocumentSnapshot) (*models.AnalysisRecord, error) {
	var record models.AnalysisRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("failed to parse analysis data: %w", err)
	}
	record.ID = doc.Ref.ID
	return &record, nil
}
