package service

import (
	"context"
	"sort"
	"time"

	"golang-overlord-pulse/internal/entity"
	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/pkg/logger"
	"golang-overlord-pulse/pkg/utils"
)

func testLogger() *logger.Logger {
	l, err := logger.New("error", "json")
	if err != nil {
		panic(err)
	}
	return l
}

type fakeNewsRepository struct {
	results map[string]*dto.NewsSearchResult
	errs    map[string]error
	calls   []string
}

func newFakeNewsRepository() *fakeNewsRepository {
	return &fakeNewsRepository{
		results: make(map[string]*dto.NewsSearchResult),
		errs:    make(map[string]error),
	}
}

func (f *fakeNewsRepository) Search(_ context.Context, query string) (*dto.NewsSearchResult, error) {
	f.calls = append(f.calls, query)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	if result, ok := f.results[query]; ok {
		return result, nil
	}
	return &dto.NewsSearchResult{}, nil
}

type fakeSnapshotRepository struct {
	rows      map[string]entity.PulseSnapshot
	upsertErr error
	nextID    uint
}

func newFakeSnapshotRepository() *fakeSnapshotRepository {
	return &fakeSnapshotRepository{rows: make(map[string]entity.PulseSnapshot)}
}

func snapshotKey(overlord string, date time.Time) string {
	return overlord + "|" + utils.FormatDate(date)
}

func (f *fakeSnapshotRepository) Upsert(_ context.Context, snapshot *entity.PulseSnapshot) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	key := snapshotKey(snapshot.Overlord, snapshot.Date)
	if existing, ok := f.rows[key]; ok {
		snapshot.ID = existing.ID
	} else {
		f.nextID++
		snapshot.ID = f.nextID
	}
	f.rows[key] = *snapshot
	return nil
}

func (f *fakeSnapshotRepository) FindSince(_ context.Context, overlord string, from time.Time) ([]entity.PulseSnapshot, error) {
	var result []entity.PulseSnapshot
	for _, snap := range f.rows {
		if snap.Overlord == overlord && !snap.Date.Before(from) {
			result = append(result, snap)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (f *fakeSnapshotRepository) FindAllSince(_ context.Context, from time.Time) ([]entity.PulseSnapshot, error) {
	var result []entity.PulseSnapshot
	for _, snap := range f.rows {
		if !snap.Date.Before(from) {
			result = append(result, snap)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (f *fakeSnapshotRepository) FindLatest(_ context.Context, overlord string) (*entity.PulseSnapshot, error) {
	var latest *entity.PulseSnapshot
	for _, snap := range f.rows {
		snap := snap
		if snap.Overlord != overlord {
			continue
		}
		if latest == nil || snap.Date.After(latest.Date) {
			latest = &snap
		}
	}
	return latest, nil
}

type fakeCacheRepository struct {
	rows      map[string]entity.PulseCache
	upsertErr map[string]error
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{
		rows:      make(map[string]entity.PulseCache),
		upsertErr: make(map[string]error),
	}
}

func (f *fakeCacheRepository) Upsert(_ context.Context, row *entity.PulseCache) error {
	if err, ok := f.upsertErr[row.Overlord]; ok {
		return err
	}
	row.UpdatedAt = time.Now().UTC()
	f.rows[row.Overlord] = *row
	return nil
}

func (f *fakeCacheRepository) FindAll(_ context.Context) ([]entity.PulseCache, error) {
	result := make([]entity.PulseCache, 0, len(f.rows))
	for _, row := range f.rows {
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Pulse7Day > result[j].Pulse7Day })
	return result, nil
}

func (f *fakeCacheRepository) FindByOverlord(_ context.Context, overlord string) (*entity.PulseCache, error) {
	if row, ok := f.rows[overlord]; ok {
		return &row, nil
	}
	return nil, nil
}

type fakeJobLogRepository struct {
	entries []entity.PulseJobLog
}

func newFakeJobLogRepository() *fakeJobLogRepository {
	return &fakeJobLogRepository{}
}

func (f *fakeJobLogRepository) Create(_ context.Context, entry *entity.PulseJobLog) error {
	entry.ID = uint(len(f.entries) + 1)
	entry.RanAt = time.Now().UTC()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeJobLogRepository) FindRecent(_ context.Context, limit int) ([]entity.PulseJobLog, error) {
	result := make([]entity.PulseJobLog, 0, limit)
	for i := len(f.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, f.entries[i])
	}
	return result, nil
}
