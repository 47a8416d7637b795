package repository

import (
	"context"

	"golang-overlord-pulse/internal/entity"

	"gorm.io/gorm"
)

// PulseJobLogRepository defines the interface for the append-only run log.
type PulseJobLogRepository interface {
	Create(ctx context.Context, entry *entity.PulseJobLog) error
	FindRecent(ctx context.Context, limit int) ([]entity.PulseJobLog, error)
}

// NewPulseJobLogRepository creates a new GORM-based job log repository.
func NewPulseJobLogRepository(db *gorm.DB) PulseJobLogRepository {
	return &pulseJobLogRepository{db: db}
}

type pulseJobLogRepository struct {
	db *gorm.DB
}

// Create appends a run log entry.
func (r *pulseJobLogRepository) Create(ctx context.Context, entry *entity.PulseJobLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindRecent returns the most recent entries, newest first.
func (r *pulseJobLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.PulseJobLog, error) {
	var entries []entity.PulseJobLog
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
