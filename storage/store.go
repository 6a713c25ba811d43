package storage

import (
	"context"
	"errors"

	"github.com/resumeinsight/backend/models"
)

var (
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user with this email already exists")
)

// AnalysisStore persists analysis records.
// Writes are last-write-wins; there is no optimistic concurrency check.
type AnalysisStore interface {
	// CreateAnalysis assigns record.ID and stores the record
	CreateAnalysis(ctx context.Context, record *models.AnalysisRecord) error
	GetAnalysis(ctx context.Context, id string) (*models.AnalysisRecord, error)
	UpdateAnalysis(ctx context.Context, record *models.AnalysisRecord) error
	// ListAnalyses returns a user's records newest first and whether more follow
	ListAnalyses(ctx context.Context, userID string, offset, limit int) ([]*models.AnalysisRecord, bool, error)
	DeleteAnalysis(ctx context.Context, id string) error
}

// trimPage cuts a read of limit+1 items down to one page and reports
// whether the extra item was there
func trimPage[T any](items []T, limit int) ([]T, bool) {
	if len(items) > limit {
		return items[:limit], true
	}
	return items, false
}

// UserStore persists user accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error
	UpdateUserProfile(ctx context.Context, email string, name string) error
}
