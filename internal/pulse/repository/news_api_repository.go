package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang-overlord-pulse/internal/pulse/config"
	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/pkg/logger"
	"golang-overlord-pulse/pkg/utils"

	"golang.org/x/time/rate"
)

// newsAPIRepository is an implementation of NewsRepository backed by the
// NewsAPI /v2/everything endpoint.
type newsAPIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewNewsAPIRepository creates a new NewsAPI-backed article source.
func NewNewsAPIRepository(cfg *config.Config, log *logger.Logger, requestLimiter *rate.Limiter) NewsRepository {
	return &newsAPIRepository{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

// Search queries NewsAPI for articles matching the query within the
// yesterday-through-today UTC window, restricted to the quality-domain
// allow-list. The returned TotalResults is the source's own match count.
func (r *newsAPIRepository) Search(ctx context.Context, query string) (*dto.NewsSearchResult, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	today := utils.TodayUTC()
	yesterday := utils.DaysAgo(today, 1)

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", utils.FormatDate(yesterday))
	params.Set("to", utils.FormatDate(today))
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(r.cfg.NewsAPI.PageSize))
	params.Set("domains", strings.Join(config.QualityDomains, ","))
	params.Set("apiKey", r.cfg.NewsAPI.APIKey)

	reqURL := fmt.Sprintf("%s?%s", r.cfg.NewsAPI.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &dto.SourceUnavailableError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var apiResp dto.NewsAPIResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &dto.NewsSearchResult{
		TotalResults: apiResp.TotalResults,
		Articles:     apiResp.Articles,
	}, nil
}
