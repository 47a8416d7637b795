package repository

import (
	"context"
	"errors"
	"time"

	"golang-overlord-pulse/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PulseSnapshotRepository defines the interface for the snapshot fact table.
// Snapshots are upserted by the job and read by everything else; no delete
// operation exists because retention is indefinite by design.
type PulseSnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *entity.PulseSnapshot) error
	FindSince(ctx context.Context, overlord string, from time.Time) ([]entity.PulseSnapshot, error)
	FindAllSince(ctx context.Context, from time.Time) ([]entity.PulseSnapshot, error)
	FindLatest(ctx context.Context, overlord string) (*entity.PulseSnapshot, error)
}

// NewPulseSnapshotRepository creates a new GORM-based snapshot repository.
func NewPulseSnapshotRepository(db *gorm.DB) PulseSnapshotRepository {
	return &pulseSnapshotRepository{db: db}
}

type pulseSnapshotRepository struct {
	db *gorm.DB
}

// Upsert inserts the snapshot or, when a row for (overlord, date) already
// exists, replaces its count, score, and headlines. Calling twice with the
// same inputs yields the same stored state.
func (r *pulseSnapshotRepository) Upsert(ctx context.Context, snapshot *entity.PulseSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "overlord"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"article_count", "sentiment_score", "top_headlines", "updated_at"}),
	}).Create(snapshot).Error
}

// FindSince returns one overlord's snapshots with date >= from, ascending by date.
func (r *pulseSnapshotRepository) FindSince(ctx context.Context, overlord string, from time.Time) ([]entity.PulseSnapshot, error) {
	var snapshots []entity.PulseSnapshot
	err := r.db.WithContext(ctx).
		Where("overlord = ? AND date >= ?", overlord, from).
		Order("date ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// FindAllSince returns every overlord's snapshots with date >= from,
// ascending by date, for comparative charting.
func (r *pulseSnapshotRepository) FindAllSince(ctx context.Context, from time.Time) ([]entity.PulseSnapshot, error) {
	var snapshots []entity.PulseSnapshot
	err := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Order("date ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// FindLatest returns the overlord's most recent snapshot by date, or nil
// when none exists yet.
func (r *pulseSnapshotRepository) FindLatest(ctx context.Context, overlord string) (*entity.PulseSnapshot, error) {
	var snapshot entity.PulseSnapshot
	err := r.db.WithContext(ctx).
		Where("overlord = ?", overlord).
		Order("date DESC").
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
