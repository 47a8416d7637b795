package service

import (
	"math"
	"time"

	"golang-overlord-pulse/internal/entity"

	"gorm.io/datatypes"
)

// computeCacheRow derives an overlord's full aggregate row from its trailing
// 30-day snapshots (ascending by date) plus its most recent snapshot overall
// (which may be older than the window). Deterministic: the same inputs
// always produce the same row. Peak-day ties are broken by earliest date.
func computeCacheRow(overlord string, today time.Time, window30 []entity.PulseSnapshot, latest *entity.PulseSnapshot) *entity.PulseCache {
	sevenAgo := today.AddDate(0, 0, -7)
	fourteenAgo := today.AddDate(0, 0, -14)

	var (
		pulse7       int
		pulse30      int
		lastWeek     int
		sentimentSum float64
		sentimentN   int
		peakDay      *time.Time
		peakCount    int
	)

	for i := range window30 {
		snap := &window30[i]
		date := snap.Date.UTC()

		pulse30 += snap.ArticleCount

		if !date.Before(sevenAgo) {
			pulse7 += snap.ArticleCount
			sentimentSum += snap.SentimentScore
			sentimentN++
		} else if !date.Before(fourteenAgo) {
			// [today-14d, today-7d): half-open so the windows never overlap.
			lastWeek += snap.ArticleCount
		}

		if snap.ArticleCount > peakCount || peakDay == nil {
			d := snap.Date
			peakDay = &d
			peakCount = snap.ArticleCount
		}
	}

	var trendPercent float64
	switch {
	case lastWeek > 0:
		trendPercent = float64(pulse7-lastWeek) / float64(lastWeek) * 100
	case pulse7 > 0:
		trendPercent = 100
	default:
		trendPercent = 0
	}
	trendPercent = math.Round(trendPercent*10) / 10

	var avgSentiment float64
	if sentimentN > 0 {
		avgSentiment = math.Round(sentimentSum/float64(sentimentN)*100) / 100
	}

	topHeadlines := datatypes.JSON([]byte("[]"))
	if latest != nil && len(latest.TopHeadlines) > 0 {
		topHeadlines = latest.TopHeadlines
	}

	return &entity.PulseCache{
		Overlord:       overlord,
		Pulse7Day:      pulse7,
		Pulse30Day:     pulse30,
		TrendPercent:   trendPercent,
		TrendDirection: TrendDirection(trendPercent),
		AvgSentiment7D: avgSentiment,
		SentimentLabel: SentimentLabel(avgSentiment),
		TopHeadlines:   topHeadlines,
		PeakDay30D:     peakDay,
		PeakCount30D:   peakCount,
	}
}
