package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"golang-overlord-pulse/internal/pulse/config"
	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/pkg/common"
	"golang-overlord-pulse/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobServiceFixture struct {
	svc          PulseJobService
	newsRepo     *fakeNewsRepository
	snapshotRepo *fakeSnapshotRepository
	cacheRepo    *fakeCacheRepository
	jobLogRepo   *fakeJobLogRepository
}

func newJobServiceFixture(cfg *config.Config) *jobServiceFixture {
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Pulse.Source = "newsapi"
		cfg.NewsAPI.APIKey = "test-key"
	}
	f := &jobServiceFixture{
		newsRepo:     newFakeNewsRepository(),
		snapshotRepo: newFakeSnapshotRepository(),
		cacheRepo:    newFakeCacheRepository(),
		jobLogRepo:   newFakeJobLogRepository(),
	}
	f.svc = NewPulseJobService(cfg, testLogger(), f.newsRepo, f.snapshotRepo, f.cacheRepo, f.jobLogRepo, nil, nil)
	return f
}

func TestPulseJobServiceRun(t *testing.T) {
	ctx := context.Background()

	t.Run("successful run snapshots every overlord and logs once", func(t *testing.T) {
		f := newJobServiceFixture(nil)
		f.newsRepo.results[config.Overlords[0].SearchQuery] = &dto.NewsSearchResult{
			TotalResults: 42,
			Articles: []dto.NewsArticle{
				{Title: "Big deal announced", Description: "record growth", URL: "https://reuters.com/a", Source: dto.NewsSource{Name: "Reuters"}},
			},
		}

		result, err := f.svc.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, common.RunStatusSuccess, result.Status)
		assert.Len(t, result.Results, len(config.Overlords))
		assert.Empty(t, result.Errors)

		// The snapshot records the reported total, not the article page length.
		snap, ok := f.snapshotRepo.rows[snapshotKey("musk", utils.TodayUTC())]
		require.True(t, ok)
		assert.Equal(t, 42, snap.ArticleCount)
		assert.Greater(t, snap.SentimentScore, 0.0)

		var headlines []dto.Headline
		require.NoError(t, json.Unmarshal(snap.TopHeadlines, &headlines))
		require.Len(t, headlines, 1)
		assert.Equal(t, "Big deal announced", headlines[0].Title)
		assert.Equal(t, "Reuters", headlines[0].SourceName)

		// Every overlord gets a recomputed cache row, even with no articles.
		assert.Len(t, f.cacheRepo.rows, len(config.Overlords))

		require.Len(t, f.jobLogRepo.entries, 1)
		entry := f.jobLogRepo.entries[0]
		assert.Equal(t, common.RunStatusSuccess, entry.Status)
		assert.Contains(t, entry.Summary, "musk: 42 articles")
		assert.Empty(t, entry.Errors)
	})

	t.Run("rerun on the same day replaces the snapshot", func(t *testing.T) {
		f := newJobServiceFixture(nil)
		query := config.Overlords[0].SearchQuery

		f.newsRepo.results[query] = &dto.NewsSearchResult{TotalResults: 10}
		_, err := f.svc.Run(ctx)
		require.NoError(t, err)

		f.newsRepo.results[query] = &dto.NewsSearchResult{TotalResults: 25}
		_, err = f.svc.Run(ctx)
		require.NoError(t, err)

		snap := f.snapshotRepo.rows[snapshotKey("musk", utils.TodayUTC())]
		assert.Equal(t, 25, snap.ArticleCount)

		// One snapshot row per overlord per day, one job log per run.
		assert.Len(t, f.snapshotRepo.rows, len(config.Overlords))
		assert.Len(t, f.jobLogRepo.entries, 2)

		cacheRow := f.cacheRepo.rows["musk"]
		assert.Equal(t, 25, cacheRow.Pulse7Day)
	})

	t.Run("one failed fetch degrades the run to partial", func(t *testing.T) {
		f := newJobServiceFixture(nil)
		query := config.Overlords[0].SearchQuery

		// A prior successful run leaves musk with data.
		f.newsRepo.results[query] = &dto.NewsSearchResult{TotalResults: 12}
		_, err := f.svc.Run(ctx)
		require.NoError(t, err)

		delete(f.newsRepo.results, query)
		f.newsRepo.errs[query] = errors.New("upstream timeout")

		result, err := f.svc.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, common.RunStatusPartial, result.Status)
		assert.Len(t, result.Results, len(config.Overlords)-1)
		require.Len(t, result.Errors, 1)
		assert.True(t, strings.HasPrefix(result.Errors[0], "Error fetching musk:"))

		// Cache recomputation still runs for the failed overlord, and it
		// re-derives the same values from the surviving snapshot.
		assert.Len(t, f.cacheRepo.rows, len(config.Overlords))
		assert.Equal(t, 12, f.cacheRepo.rows["musk"].Pulse7Day)

		require.Len(t, f.jobLogRepo.entries, 2)
		assert.Equal(t, common.RunStatusPartial, f.jobLogRepo.entries[1].Status)
	})

	t.Run("missing api key aborts before ingestion", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Pulse.Source = "newsapi"
		f := newJobServiceFixture(cfg)

		result, err := f.svc.Run(ctx)
		require.Error(t, err)
		assert.Nil(t, result)

		assert.Empty(t, f.newsRepo.calls)
		assert.Empty(t, f.snapshotRepo.rows)

		require.Len(t, f.jobLogRepo.entries, 1)
		entry := f.jobLogRepo.entries[0]
		assert.Equal(t, common.RunStatusError, entry.Status)
		require.Len(t, entry.Errors, 1)
		assert.Contains(t, entry.Errors[0], "api_key")
	})

	t.Run("google rss source does not require an api key", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Pulse.Source = "googlerss"
		f := newJobServiceFixture(cfg)

		result, err := f.svc.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, common.RunStatusSuccess, result.Status)
	})

	t.Run("run exclusive without redis degrades to a plain run", func(t *testing.T) {
		f := newJobServiceFixture(nil)

		result, err := f.svc.RunExclusive(ctx)
		require.NoError(t, err)
		assert.Equal(t, common.RunStatusSuccess, result.Status)
		assert.Len(t, f.jobLogRepo.entries, 1)
	})
}

func TestRecalculateCache(t *testing.T) {
	ctx := context.Background()
	f := newJobServiceFixture(nil)
	f.newsRepo.results[config.Overlords[0].SearchQuery] = &dto.NewsSearchResult{TotalResults: 7}

	_, err := f.svc.Run(ctx)
	require.NoError(t, err)

	// Drop the cache row and rebuild it from snapshots alone.
	delete(f.cacheRepo.rows, "musk")
	require.NoError(t, f.svc.RecalculateCache(ctx, "musk"))

	row, ok := f.cacheRepo.rows["musk"]
	require.True(t, ok)
	assert.Equal(t, 7, row.Pulse7Day)
	assert.Equal(t, 7, row.Pulse30Day)
}

func TestBuildHeadlines(t *testing.T) {
	long := strings.Repeat("x", 250)
	articles := []dto.NewsArticle{
		{Title: "t1", Description: long, URL: "https://reuters.com/a", Source: dto.NewsSource{Name: "Reuters"}},
		{Title: "t2", Description: "short", URL: "https://bbc.com/b"},
	}

	headlines := buildHeadlines(articles)
	require.Len(t, headlines, 2)
	assert.Len(t, []rune(headlines[0].Description), 200)
	assert.Equal(t, "Unknown", headlines[1].SourceName)
}
