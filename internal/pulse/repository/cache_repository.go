package repository

import (
	"context"
	"errors"

	"golang-overlord-pulse/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PulseCacheRepository defines the interface for the derived aggregate table.
// Rows are overwritten wholesale by the recalculation path; nothing else
// writes to this table.
type PulseCacheRepository interface {
	Upsert(ctx context.Context, row *entity.PulseCache) error
	FindAll(ctx context.Context) ([]entity.PulseCache, error)
	FindByOverlord(ctx context.Context, overlord string) (*entity.PulseCache, error)
}

// NewPulseCacheRepository creates a new GORM-based cache repository.
func NewPulseCacheRepository(db *gorm.DB) PulseCacheRepository {
	return &pulseCacheRepository{db: db}
}

type pulseCacheRepository struct {
	db *gorm.DB
}

// Upsert replaces the overlord's cache row in a single atomic statement, so
// concurrent readers observe either the previous row or the new one.
func (r *pulseCacheRepository) Upsert(ctx context.Context, row *entity.PulseCache) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "overlord"}},
		UpdateAll: true,
	}).Create(row).Error
}

// FindAll returns every cache row ordered by pulse_7day descending.
func (r *pulseCacheRepository) FindAll(ctx context.Context) ([]entity.PulseCache, error) {
	var rows []entity.PulseCache
	err := r.db.WithContext(ctx).
		Order("pulse_7day DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByOverlord returns the overlord's cache row, or nil when no run has
// produced one yet.
func (r *pulseCacheRepository) FindByOverlord(ctx context.Context, overlord string) (*entity.PulseCache, error) {
	var row entity.PulseCache
	err := r.db.WithContext(ctx).
		Where("overlord = ?", overlord).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
