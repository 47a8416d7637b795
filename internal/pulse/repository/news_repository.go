package repository

import (
	"context"
	"time"

	"golang-overlord-pulse/internal/pulse/dto"

	"golang.org/x/time/rate"
)

// NewsRepository defines the interface for querying an external article source.
// Implementations are pure queries: no side effects beyond the outbound request.
type NewsRepository interface {
	Search(ctx context.Context, query string) (*dto.NewsSearchResult, error)
}

// NewRequestLimiter builds the pacing limiter shared by article source
// implementations. Sequential per-overlord fetches wait on it so the run
// never exceeds the source's rate limit; tests pass a rate.Inf limiter.
func NewRequestLimiter(maxRequestPerMinute int) *rate.Limiter {
	secondsPerRequest := time.Minute / time.Duration(maxRequestPerMinute)
	return rate.NewLimiter(rate.Every(secondsPerRequest), 1)
}
