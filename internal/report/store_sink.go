package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"thecorner/backend/internal/models"
)

// StoreSink persists reports to Postgres for the admin tooling.
type StoreSink struct {
	db *gorm.DB
}

// NewStoreSink migrates the reports table and returns the sink.
func NewStoreSink(db *gorm.DB) (*StoreSink, error) {
	if err := db.AutoMigrate(&models.Report{}); err != nil {
		return nil, fmt.Errorf("migrate reports table: %w", err)
	}
	return &StoreSink{db: db}, nil
}

func (s *StoreSink) Save(ctx context.Context, rep *models.Report) error {
	return s.db.WithContext(ctx).Create(rep).Error
}

// Recent returns up to limit reports, newest first.
func (s *StoreSink) Recent(ctx context.Context, limit int) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.WithContext(ctx).
		Order("timestamp desc").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

// Get returns one report by id, or nil when absent.
func (s *StoreSink) Get(ctx context.Context, id string) (*models.Report, error) {
	var rep models.Report
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// Purge deletes reports older than the given age and returns the count.
func (s *StoreSink) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res := s.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&models.Report{})
	return res.RowsAffected, res.Error
}
