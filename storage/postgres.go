package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/models"
)

// analysisRow is the Postgres table layout of an AnalysisRecord.
// Nested structures are stored as JSON columns.
type analysisRow struct {
	ID                 string `gorm:"type:uuid;primaryKey"`
	UserID             string `gorm:"type:text;not null;index"`
	FileName           string `gorm:"type:text"`
	MediaType          string `gorm:"type:text"`
	FileSize           int64
	TargetRole         string                     `gorm:"type:text"`
	JobDescription     string                     `gorm:"type:text"`
	ExtractedText      string                     `gorm:"type:text;not null"`
	ExtractionStrategy string                     `gorm:"type:text"`
	ResumeValidation   models.ValidationVerdict   `gorm:"serializer:json"`
	Resume             *models.ResumeProfile      `gorm:"serializer:json"`
	AIAnalysis         *models.NormalizedAnalysis `gorm:"serializer:json"`
	ProcessingStatus   string                     `gorm:"type:text;not null"`
	ProcessingErrors   []models.ProcessingError   `gorm:"serializer:json"`
	UploadedAt         time.Time
	AnalyzedAt         *time.Time
	LastUpdated        time.Time
}

func (analysisRow) TableName() string {
	return "analyses"
}

func rowFromRecord(r *models.AnalysisRecord) *analysisRow {
	return &analysisRow{
		ID:                 r.ID,
		UserID:             r.UserID,
		FileName:           r.FileName,
		MediaType:          r.MediaType,
		FileSize:           r.FileSize,
		TargetRole:         r.TargetRole,
		JobDescription:     r.JobDescription,
		ExtractedText:      r.ExtractedText,
		ExtractionStrategy: r.ExtractionStrategy,
		ResumeValidation:   r.ResumeValidation,
		Resume:             r.Resume,
		AIAnalysis:         r.AIAnalysis,
		ProcessingStatus:   string(r.ProcessingStatus),
		ProcessingErrors:   r.ProcessingErrors,
		UploadedAt:         r.UploadedAt,
		AnalyzedAt:         r.AnalyzedAt,
		LastUpdated:        r.LastUpdated,
	}
}

func (row *analysisRow) record() *models.AnalysisRecord {
	return &models.AnalysisRecord{
		ID:                 row.ID,
		UserID:             row.UserID,
		FileName:           row.FileName,
		MediaType:          row.MediaType,
		FileSize:           row.FileSize,
		TargetRole:         row.TargetRole,
		JobDescription:     row.JobDescription,
		ExtractedText:      row.ExtractedText,
		ExtractionStrategy: row.ExtractionStrategy,
		ResumeValidation:   row.ResumeValidation,
		Resume:             row.Resume,
		AIAnalysis:         row.AIAnalysis,
		ProcessingStatus:   models.ProcessingStatus(row.ProcessingStatus),
		ProcessingErrors:   row.ProcessingErrors,
		UploadedAt:         row.UploadedAt,
		AnalyzedAt:         row.AnalyzedAt,
		LastUpdated:        row.LastUpdated,
	}
}

// PostgresStore keeps analysis history in Postgres
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to DATABASE_URL and migrates the analyses table
func NewPostgresStore(cfg *config.Config) (*PostgresStore, error) {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("[Storage] Postgres connected")

	if err := db.AutoMigrate(&analysisRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromDB wraps an open connection
func NewPostgresStoreFromDB(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close closes the underlying connection pool
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateAnalysis inserts a record under a fresh UUID
func (s *PostgresStore) CreateAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	if record.LastUpdated.IsZero() {
		record.LastUpdated = time.Now()
	}
	row := rowFromRecord(record)
	row.ID = uuid.New().String()

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	record.ID = row.ID
	return nil
}

// GetAnalysis retrieves one record
func (s *PostgresStore) GetAnalysis(ctx context.Context, id string) (*models.AnalysisRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAnalysisNotFound
	}

	var row analysisRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return row.record(), nil
}

// UpdateAnalysis overwrites a stored record
func (s *PostgresStore) UpdateAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	result := s.db.WithContext(ctx).Save(rowFromRecord(record))
	if result.Error != nil {
		return fmt.Errorf("failed to update analysis: %w", result.Error)
	}
	return nil
}

// ListAnalyses returns one page of a user's records, newest first
func (s *PostgresStore) ListAnalyses(ctx context.Context, userID string, offset, limit int) ([]*models.AnalysisRecord, bool, error) {
	var rows []analysisRow
	if err := listAnalysesQuery(s.db.WithContext(ctx), userID, offset, limit).Find(&rows).Error; err != nil {
		return nil, false, fmt.Errorf("failed to list analyses: %w", err)
	}

	rows, hasMore := trimPage(rows, limit)
	records := make([]*models.AnalysisRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].record())
	}
	return records, hasMore, nil
}

// listAnalysesQuery reads one row past the page so the caller can tell
// whether another page exists
func listAnalysesQuery(tx *gorm.DB, userID string, offset, limit int) *gorm.DB {
	return tx.Model(&analysisRow{}).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Offset(offset).
		Limit(limit + 1)
}

// DeleteAnalysis removes a record
func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&analysisRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}
