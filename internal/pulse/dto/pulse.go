package dto

import "time"

// Headline is the trimmed projection of an article retained inside a
// snapshot's top-headlines list.
type Headline struct {
	Title       string `json:"title"`
	SourceName  string `json:"source_name"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Description string `json:"description"`
}

// PulseJobResult summarizes one overlord's outcome within a run.
type PulseJobResult struct {
	Overlord       string  `json:"overlord"`
	ArticleCount   int     `json:"article_count"`
	SentimentScore float64 `json:"sentiment_score"`
	HeadlineCount  int     `json:"headline_count"`
}

// PulseRunResult is the outcome of one full ingestion run.
type PulseRunResult struct {
	Status  string           `json:"status"`
	Results []PulseJobResult `json:"results"`
	Errors  []string         `json:"errors"`
	RanAt   time.Time        `json:"ran_at"`
}

// CurrentStats is the derived rolling-aggregate block for one overlord.
type CurrentStats struct {
	Pulse7Day      int     `json:"pulse_7day"`
	Pulse30Day     int     `json:"pulse_30day"`
	TrendPercent   float64 `json:"trend_percent"`
	TrendDirection string  `json:"trend_direction"`
	AvgSentiment7D float64 `json:"avg_sentiment_7day"`
	SentimentLabel string  `json:"sentiment_label"`
}

// OverlordPulse is one overlord's entry in the overview listing.
type OverlordPulse struct {
	Key            string     `json:"key"`
	Name           string     `json:"name"`
	ShortName      string     `json:"short_name"`
	Color          string     `json:"color"`
	Pulse7Day      int        `json:"pulse_7day"`
	Pulse30Day     int        `json:"pulse_30day"`
	TrendPercent   float64    `json:"trend_percent"`
	TrendDirection string     `json:"trend_direction"`
	AvgSentiment7D float64    `json:"avg_sentiment_7day"`
	SentimentLabel string     `json:"sentiment_label"`
	PeakDay30D     *string    `json:"peak_day_30d"`
	PeakCount30D   int        `json:"peak_count_30d"`
	Headlines      []Headline `json:"headlines"`
}

// PulseOverviewResponse is the full aggregate listing. The superlative keys
// are derived at request time by max/min reduction over the cache rows.
type PulseOverviewResponse struct {
	UpdatedAt    *time.Time      `json:"updated_at"`
	Overlords    []OverlordPulse `json:"overlords"`
	Hottest      *string         `json:"hottest"`
	BiggestSurge *string         `json:"biggest_surge"`
	MostNegative *string         `json:"most_negative"`
	Quietest     *string         `json:"quietest"`
}

// DailyHistoryPoint is one day of an overlord's ingested series.
type DailyHistoryPoint struct {
	Date           string  `json:"date"`
	ArticleCount   int     `json:"article_count"`
	SentimentScore float64 `json:"sentiment_score"`
}

// OverlordDetailResponse is the single-overlord detail view.
type OverlordDetailResponse struct {
	Key          string              `json:"key"`
	Name         string              `json:"name"`
	Current      CurrentStats        `json:"current"`
	TopHeadlines []Headline          `json:"top_headlines"`
	DailyHistory []DailyHistoryPoint `json:"daily_history"`
}

// HistoryPoint is one day of the comparative multi-overlord series.
type HistoryPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// PulseHistoryResponse is the multi-overlord trailing-history series.
type PulseHistoryResponse struct {
	Days int                       `json:"days"`
	Data map[string][]HistoryPoint `json:"data"`
}

// AdminOverlordSummary is the condensed per-overlord line on the admin surface.
type AdminOverlordSummary struct {
	Key            string    `json:"key"`
	Name           string    `json:"name"`
	Pulse7Day      int       `json:"pulse_7day"`
	Pulse30Day     int       `json:"pulse_30day"`
	TrendDirection string    `json:"trend_direction"`
	SentimentLabel string    `json:"sentiment_label"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobLogEntry is one job log row as exposed on the admin surface.
type JobLogEntry struct {
	ID      uint      `json:"id"`
	RanAt   time.Time `json:"ran_at"`
	Status  string    `json:"status"`
	Summary string    `json:"summary"`
	Errors  []string  `json:"errors"`
}

// AdminStatusResponse is the admin operational-visibility view.
type AdminStatusResponse struct {
	Overlords   []AdminOverlordSummary `json:"overlords"`
	RecentJobs  []JobLogEntry          `json:"recent_jobs"`
	LastUpdated *time.Time             `json:"last_updated"`
}
