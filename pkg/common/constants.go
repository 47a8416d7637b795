package common

const (
	// Pulse run statuses recorded in the job log.
	RunStatusSuccess = "success"
	RunStatusPartial = "partial"
	RunStatusError   = "error"

	// Trend direction buckets derived from week-over-week percent change.
	TrendSurging = "surging"
	TrendRising  = "rising"
	TrendStable  = "stable"
	TrendCooling = "cooling"
	TrendQuiet   = "quiet"

	// Sentiment label buckets derived from the average sentiment score.
	SentimentPositive        = "positive"
	SentimentLeaningPositive = "leaning positive"
	SentimentNeutral         = "neutral"
	SentimentLeaningNegative = "leaning negative"
	SentimentNegative        = "negative"

	// RedisKeyPulseRunLock guards the trigger surfaces against overlapping runs.
	RedisKeyPulseRunLock = "pulse.job.run.lock"
)
