package service

import (
	"context"
	"encoding/json"
	"time"

	"golang-overlord-pulse/internal/entity"
	"golang-overlord-pulse/internal/pulse/config"
	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/internal/pulse/repository"
	"golang-overlord-pulse/pkg/common"
	"golang-overlord-pulse/pkg/logger"
	"golang-overlord-pulse/pkg/utils"

	gocache "github.com/patrickmn/go-cache"
)

const (
	detailHistoryDays = 90
	defaultHistory    = 90
	maxHistoryDays    = 365
	minHistoryDays    = 1

	overviewCacheKey = "pulse.overview"
	overviewCacheTTL = 60 * time.Second

	recentJobLogLimit = 10
)

// PulseQueryService serves the read-only API surface. It only ever reads
// the snapshot and cache tables; it never triggers ingestion, and callers
// always get a well-defined empty shape when no data exists yet.
type PulseQueryService interface {
	GetOverview(ctx context.Context) (*dto.PulseOverviewResponse, error)
	GetOverlordDetail(ctx context.Context, key string) (*dto.OverlordDetailResponse, error)
	GetHistory(ctx context.Context, days int) (*dto.PulseHistoryResponse, error)
	GetAdminStatus(ctx context.Context) (*dto.AdminStatusResponse, error)
}

// NewPulseQueryService creates a new pulse query service.
func NewPulseQueryService(
	log *logger.Logger,
	snapshotRepo repository.PulseSnapshotRepository,
	cacheRepo repository.PulseCacheRepository,
	jobLogRepo repository.PulseJobLogRepository,
) PulseQueryService {
	return &pulseQueryService{
		logger:        log,
		snapshotRepo:  snapshotRepo,
		cacheRepo:     cacheRepo,
		jobLogRepo:    jobLogRepo,
		inmemoryCache: gocache.New(overviewCacheTTL, 5*time.Minute),
	}
}

type pulseQueryService struct {
	logger        *logger.Logger
	snapshotRepo  repository.PulseSnapshotRepository
	cacheRepo     repository.PulseCacheRepository
	jobLogRepo    repository.PulseJobLogRepository
	inmemoryCache *gocache.Cache
}

// GetOverview returns all cache rows plus the request-time superlatives:
// hottest (max pulse_7day), biggest surge (max trend_percent), most negative
// (min avg_sentiment_7day), quietest (min pulse_7day).
func (s *pulseQueryService) GetOverview(ctx context.Context) (*dto.PulseOverviewResponse, error) {
	if cached, found := s.inmemoryCache.Get(overviewCacheKey); found {
		return cached.(*dto.PulseOverviewResponse), nil
	}

	rows, err := s.cacheRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PulseOverviewResponse{
		Overlords: make([]dto.OverlordPulse, 0, len(rows)),
	}

	if len(rows) == 0 {
		return resp, nil
	}

	var (
		hottest      = &rows[0]
		biggestSurge = &rows[0]
		mostNegative = &rows[0]
		quietest     = &rows[0]
		lastUpdated  = rows[0].UpdatedAt
	)

	for i := range rows {
		row := &rows[i]

		if row.Pulse7Day > hottest.Pulse7Day {
			hottest = row
		}
		if row.TrendPercent > biggestSurge.TrendPercent {
			biggestSurge = row
		}
		if row.AvgSentiment7D < mostNegative.AvgSentiment7D {
			mostNegative = row
		}
		if row.Pulse7Day < quietest.Pulse7Day {
			quietest = row
		}
		if row.UpdatedAt.After(lastUpdated) {
			lastUpdated = row.UpdatedAt
		}

		resp.Overlords = append(resp.Overlords, s.toOverlordPulse(row))
	}

	resp.UpdatedAt = &lastUpdated
	resp.Hottest = &hottest.Overlord
	resp.BiggestSurge = &biggestSurge.Overlord
	resp.MostNegative = &mostNegative.Overlord
	resp.Quietest = &quietest.Overlord

	s.inmemoryCache.Set(overviewCacheKey, resp, gocache.DefaultExpiration)
	return resp, nil
}

// GetOverlordDetail returns one overlord's cache row plus its trailing
// 90-day history. An unconfigured key yields ErrOverlordNotFound; a
// configured key with no ingested data yields the zeroed shape.
func (s *pulseQueryService) GetOverlordDetail(ctx context.Context, key string) (*dto.OverlordDetailResponse, error) {
	overlord, ok := config.GetOverlord(key)
	if !ok {
		return nil, dto.ErrOverlordNotFound
	}

	resp := &dto.OverlordDetailResponse{
		Key:  overlord.Key,
		Name: overlord.Name,
		Current: dto.CurrentStats{
			TrendDirection: common.TrendStable,
			SentimentLabel: common.SentimentNeutral,
		},
		TopHeadlines: []dto.Headline{},
		DailyHistory: []dto.DailyHistoryPoint{},
	}

	row, err := s.cacheRepo.FindByOverlord(ctx, key)
	if err != nil {
		return nil, err
	}
	if row != nil {
		resp.Current = dto.CurrentStats{
			Pulse7Day:      row.Pulse7Day,
			Pulse30Day:     row.Pulse30Day,
			TrendPercent:   row.TrendPercent,
			TrendDirection: row.TrendDirection,
			AvgSentiment7D: row.AvgSentiment7D,
			SentimentLabel: row.SentimentLabel,
		}
		resp.TopHeadlines = s.decodeHeadlines(row.TopHeadlines)
	}

	snapshots, err := s.snapshotRepo.FindSince(ctx, key, utils.DaysAgo(utils.TodayUTC(), detailHistoryDays))
	if err != nil {
		return nil, err
	}
	for _, snap := range snapshots {
		resp.DailyHistory = append(resp.DailyHistory, dto.DailyHistoryPoint{
			Date:           utils.FormatDate(snap.Date),
			ArticleCount:   snap.ArticleCount,
			SentimentScore: snap.SentimentScore,
		})
	}

	return resp, nil
}

// GetHistory returns the comparative per-overlord daily series for the
// trailing N days, clamped to [1, 365] with a 90-day default.
func (s *pulseQueryService) GetHistory(ctx context.Context, days int) (*dto.PulseHistoryResponse, error) {
	if days == 0 {
		days = defaultHistory
	}
	if days < minHistoryDays {
		days = minHistoryDays
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}

	snapshots, err := s.snapshotRepo.FindAllSince(ctx, utils.DaysAgo(utils.TodayUTC(), days))
	if err != nil {
		return nil, err
	}

	data := make(map[string][]dto.HistoryPoint)
	for _, snap := range snapshots {
		data[snap.Overlord] = append(data[snap.Overlord], dto.HistoryPoint{
			Date:  utils.FormatDate(snap.Date),
			Count: snap.ArticleCount,
		})
	}

	return &dto.PulseHistoryResponse{Days: days, Data: data}, nil
}

// GetAdminStatus returns the condensed cache summary plus recent run log
// entries for operational visibility.
func (s *pulseQueryService) GetAdminStatus(ctx context.Context) (*dto.AdminStatusResponse, error) {
	rows, err := s.cacheRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.jobLogRepo.FindRecent(ctx, recentJobLogLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdminStatusResponse{
		Overlords:  make([]dto.AdminOverlordSummary, 0, len(rows)),
		RecentJobs: make([]dto.JobLogEntry, 0, len(logs)),
	}

	for i := range rows {
		row := &rows[i]
		name := row.Overlord
		if overlord, ok := config.GetOverlord(row.Overlord); ok {
			name = overlord.Name
		}
		resp.Overlords = append(resp.Overlords, dto.AdminOverlordSummary{
			Key:            row.Overlord,
			Name:           name,
			Pulse7Day:      row.Pulse7Day,
			Pulse30Day:     row.Pulse30Day,
			TrendDirection: row.TrendDirection,
			SentimentLabel: row.SentimentLabel,
			UpdatedAt:      row.UpdatedAt,
		})
		if resp.LastUpdated == nil || row.UpdatedAt.After(*resp.LastUpdated) {
			updatedAt := row.UpdatedAt
			resp.LastUpdated = &updatedAt
		}
	}

	for _, entry := range logs {
		resp.RecentJobs = append(resp.RecentJobs, dto.JobLogEntry{
			ID:      entry.ID,
			RanAt:   entry.RanAt,
			Status:  entry.Status,
			Summary: entry.Summary,
			Errors:  entry.Errors,
		})
	}

	return resp, nil
}

func (s *pulseQueryService) toOverlordPulse(row *entity.PulseCache) dto.OverlordPulse {
	overlord, ok := config.GetOverlord(row.Overlord)
	if !ok {
		overlord.Name = row.Overlord
		overlord.ShortName = row.Overlord
	}

	var peakDay *string
	if row.PeakDay30D != nil {
		d := utils.FormatDate(*row.PeakDay30D)
		peakDay = &d
	}

	return dto.OverlordPulse{
		Key:            row.Overlord,
		Name:           overlord.Name,
		ShortName:      overlord.ShortName,
		Color:          overlord.AccentColor,
		Pulse7Day:      row.Pulse7Day,
		Pulse30Day:     row.Pulse30Day,
		TrendPercent:   row.TrendPercent,
		TrendDirection: row.TrendDirection,
		AvgSentiment7D: row.AvgSentiment7D,
		SentimentLabel: row.SentimentLabel,
		PeakDay30D:     peakDay,
		PeakCount30D:   row.PeakCount30D,
		Headlines:      s.decodeHeadlines(row.TopHeadlines),
	}
}

func (s *pulseQueryService) decodeHeadlines(raw []byte) []dto.Headline {
	headlines := []dto.Headline{}
	if len(raw) == 0 {
		return headlines
	}
	if err := json.Unmarshal(raw, &headlines); err != nil {
		s.logger.Warn("Failed to decode stored headlines", logger.ErrorField(err))
		return []dto.Headline{}
	}
	return headlines
}
