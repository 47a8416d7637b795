package service

import (
	"strings"

	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/pkg/common"
)

// Keyword lists for the persisted sentiment pipeline. Matching is
// case-insensitive substring containment over title+description.
var positiveKeywords = []string{
	"launches", "launch", "breakthrough", "record", "partnership", "innovation",
	"growth", "profit", "revenue", "deal", "expansion", "milestone",
	"success", "surges", "gains", "unveils", "announces", "wins",
	"approval", "bullish", "upgrade", "boost", "soars",
}

var negativeKeywords = []string{
	"lawsuit", "controversy", "investigation", "layoffs", "scandal",
	"crash", "sued", "fine", "fined", "penalty", "probe", "antitrust",
	"fraud", "violation", "hack", "breach", "loses", "decline",
	"downturn", "failure", "fired", "resign", "subpoena", "bearish",
}

// CalculateSentiment scores a batch of articles in [-1, 1]. The score is
// (positive hits - negative hits) / total hits, normalized by hit count
// rather than word count, and exactly 0.0 when no keyword matches at all.
func CalculateSentiment(articles []dto.NewsArticle) float64 {
	var positiveCount, negativeCount int

	for _, article := range articles {
		text := strings.ToLower(article.Title + " " + article.Description)

		for _, keyword := range positiveKeywords {
			if strings.Contains(text, keyword) {
				positiveCount++
			}
		}
		for _, keyword := range negativeKeywords {
			if strings.Contains(text, keyword) {
				negativeCount++
			}
		}
	}

	total := positiveCount + negativeCount
	if total == 0 {
		return 0.0
	}
	return float64(positiveCount-negativeCount) / float64(total)
}

// SentimentLabel buckets an average sentiment score.
func SentimentLabel(score float64) string {
	switch {
	case score > 0.3:
		return common.SentimentPositive
	case score > 0.0:
		return common.SentimentLeaningPositive
	case score == 0.0:
		return common.SentimentNeutral
	case score > -0.3:
		return common.SentimentLeaningNegative
	default:
		return common.SentimentNegative
	}
}

// TrendDirection buckets a week-over-week percent change.
func TrendDirection(trendPercent float64) string {
	switch {
	case trendPercent > 20:
		return common.TrendSurging
	case trendPercent > 5:
		return common.TrendRising
	case trendPercent >= -5:
		return common.TrendStable
	case trendPercent > -20:
		return common.TrendCooling
	default:
		return common.TrendQuiet
	}
}
