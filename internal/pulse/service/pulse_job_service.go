package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"golang-overlord-pulse/internal/entity"
	"golang-overlord-pulse/internal/pulse/config"
	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/internal/pulse/repository"
	"golang-overlord-pulse/pkg/common"
	"golang-overlord-pulse/pkg/logger"
	"golang-overlord-pulse/pkg/telegram"
	"golang-overlord-pulse/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// headlineDescriptionLimit truncates stored headline descriptions.
const headlineDescriptionLimit = 200

// runLockTTL caps how long a crashed run can hold the trigger lock.
const runLockTTL = 10 * time.Minute

// PulseJobService drives one ingestion run: per overlord fetch, filter,
// score, and snapshot upsert, then a cache recomputation for every overlord,
// then exactly one job log entry.
type PulseJobService interface {
	Run(ctx context.Context) (*dto.PulseRunResult, error)
	RunExclusive(ctx context.Context) (*dto.PulseRunResult, error)
	RecalculateCache(ctx context.Context, overlord string) error
}

// NewPulseJobService creates a new pulse job service. The Redis client and
// notifier are optional; without Redis, RunExclusive degrades to Run.
func NewPulseJobService(
	cfg *config.Config,
	log *logger.Logger,
	newsRepo repository.NewsRepository,
	snapshotRepo repository.PulseSnapshotRepository,
	cacheRepo repository.PulseCacheRepository,
	jobLogRepo repository.PulseJobLogRepository,
	redisClient *redis.Client,
	notifier telegram.Notifier,
) PulseJobService {
	return &pulseJobService{
		cfg:          cfg,
		logger:       log,
		newsRepo:     newsRepo,
		snapshotRepo: snapshotRepo,
		cacheRepo:    cacheRepo,
		jobLogRepo:   jobLogRepo,
		redisClient:  redisClient,
		notifier:     notifier,
	}
}

type pulseJobService struct {
	cfg          *config.Config
	logger       *logger.Logger
	newsRepo     repository.NewsRepository
	snapshotRepo repository.PulseSnapshotRepository
	cacheRepo    repository.PulseCacheRepository
	jobLogRepo   repository.PulseJobLogRepository
	redisClient  *redis.Client
	notifier     telegram.Notifier
}

// RunExclusive runs the job under a best-effort Redis lock so the trigger
// surfaces (HTTP and cron) avoid overlapping invocations. The job itself
// carries no overlap protection.
func (s *pulseJobService) RunExclusive(ctx context.Context) (*dto.PulseRunResult, error) {
	if s.redisClient == nil {
		return s.Run(ctx)
	}

	acquired, err := s.redisClient.SetNX(ctx, common.RedisKeyPulseRunLock, time.Now().UTC().Format(time.RFC3339), runLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		return nil, dto.ErrRunInProgress
	}
	defer func() {
		if err := s.redisClient.Del(context.WithoutCancel(ctx), common.RedisKeyPulseRunLock).Err(); err != nil {
			s.logger.Warn("Failed to release run lock", logger.ErrorField(err))
		}
	}()

	return s.Run(ctx)
}

// Run executes one ingestion run. Per-overlord failures are recorded and the
// run continues; the only fatal condition is a missing required credential
// before the loop starts.
func (s *pulseJobService) Run(ctx context.Context) (*dto.PulseRunResult, error) {
	ranAt := time.Now().UTC()

	if s.cfg.Pulse.Source == "newsapi" && s.cfg.NewsAPI.APIKey == "" {
		err := fmt.Errorf("news_api.api_key is not configured")
		s.writeJobLog(ctx, common.RunStatusError, "run aborted before ingestion", []string{err.Error()})
		return nil, err
	}

	today := utils.TodayUTC()
	results := make([]dto.PulseJobResult, 0, len(config.Overlords))
	runErrors := make([]string, 0)

	for _, overlord := range config.Overlords {
		searchResult, err := s.newsRepo.Search(ctx, overlord.SearchQuery)
		if err != nil {
			msg := fmt.Sprintf("Error fetching %s: %v", overlord.Key, err)
			runErrors = append(runErrors, msg)
			s.logger.Error("Overlord fetch failed", logger.StringField("overlord", overlord.Key), logger.ErrorField(err))
			continue
		}

		cleanArticles := FilterArticles(searchResult.Articles)
		headlines := buildHeadlines(cleanArticles)
		score := math.Round(CalculateSentiment(cleanArticles)*100) / 100

		headlinesJSON, err := json.Marshal(headlines)
		if err != nil {
			runErrors = append(runErrors, fmt.Sprintf("Error encoding headlines for %s: %v", overlord.Key, err))
			continue
		}

		snapshot := &entity.PulseSnapshot{
			Overlord:       overlord.Key,
			Date:           today,
			ArticleCount:   searchResult.TotalResults,
			SentimentScore: score,
			TopHeadlines:   headlinesJSON,
		}
		if err := s.snapshotRepo.Upsert(ctx, snapshot); err != nil {
			runErrors = append(runErrors, fmt.Sprintf("Error storing snapshot for %s: %v", overlord.Key, err))
			s.logger.Error("Snapshot upsert failed", logger.StringField("overlord", overlord.Key), logger.ErrorField(err))
			continue
		}

		results = append(results, dto.PulseJobResult{
			Overlord:       overlord.Key,
			ArticleCount:   searchResult.TotalResults,
			SentimentScore: score,
			HeadlineCount:  len(headlines),
		})

		s.logger.Info("Overlord snapshot stored",
			logger.StringField("overlord", overlord.Key),
			logger.IntField("article_count", searchResult.TotalResults),
			logger.Float64Field("sentiment_score", score),
		)
	}

	// Recompute after all snapshots for the run are in place, so every
	// recalculation sees the just-written data.
	for _, overlord := range config.Overlords {
		if err := s.recalculate(ctx, overlord.Key, today); err != nil {
			runErrors = append(runErrors, fmt.Sprintf("Error recalculating cache for %s: %v", overlord.Key, err))
			s.logger.Error("Cache recalculation failed", logger.StringField("overlord", overlord.Key), logger.ErrorField(err))
		}
	}

	status := common.RunStatusSuccess
	if len(runErrors) > 0 {
		status = common.RunStatusPartial
	}

	summaryParts := make([]string, 0, len(results))
	for _, r := range results {
		summaryParts = append(summaryParts, fmt.Sprintf("%s: %d articles", r.Overlord, r.ArticleCount))
	}
	summary := strings.Join(summaryParts, ", ")

	s.writeJobLog(ctx, status, summary, runErrors)
	s.notifyOutcome(status, summary, runErrors)

	return &dto.PulseRunResult{
		Status:  status,
		Results: results,
		Errors:  runErrors,
		RanAt:   ranAt,
	}, nil
}

// RecalculateCache rebuilds one overlord's aggregate row from its snapshots.
func (s *pulseJobService) RecalculateCache(ctx context.Context, overlord string) error {
	return s.recalculate(ctx, overlord, utils.TodayUTC())
}

func (s *pulseJobService) recalculate(ctx context.Context, overlord string, today time.Time) error {
	window30, err := s.snapshotRepo.FindSince(ctx, overlord, utils.DaysAgo(today, 30))
	if err != nil {
		return fmt.Errorf("failed to load snapshot window: %w", err)
	}

	latest, err := s.snapshotRepo.FindLatest(ctx, overlord)
	if err != nil {
		return fmt.Errorf("failed to load latest snapshot: %w", err)
	}

	row := computeCacheRow(overlord, today, window30, latest)
	if err := s.cacheRepo.Upsert(ctx, row); err != nil {
		return fmt.Errorf("failed to store cache row: %w", err)
	}
	return nil
}

func (s *pulseJobService) writeJobLog(ctx context.Context, status, summary string, runErrors []string) {
	entry := &entity.PulseJobLog{
		Status:  status,
		Summary: summary,
		Errors:  runErrors,
	}
	if err := s.jobLogRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to write job log entry", logger.ErrorField(err))
	}
}

func (s *pulseJobService) notifyOutcome(status, summary string, runErrors []string) {
	if s.notifier == nil || status == common.RunStatusSuccess {
		return
	}
	text := fmt.Sprintf("*Pulse run %s*\n%s\nErrors: %s", status, summary, strings.Join(runErrors, "; "))
	if err := s.notifier.SendMessage(text); err != nil {
		s.logger.Warn("Failed to send run notification", logger.ErrorField(err))
	}
}

// buildHeadlines projects surviving articles into the persisted headline shape.
func buildHeadlines(articles []dto.NewsArticle) []dto.Headline {
	headlines := make([]dto.Headline, 0, len(articles))
	for _, a := range articles {
		sourceName := a.Source.Name
		if sourceName == "" {
			sourceName = "Unknown"
		}
		headlines = append(headlines, dto.Headline{
			Title:       a.Title,
			SourceName:  sourceName,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Description: truncate(a.Description, headlineDescriptionLimit),
		})
	}
	return headlines
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
