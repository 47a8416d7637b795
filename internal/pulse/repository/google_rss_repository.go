package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

const googleNewsRSSBase = "https://news.google.com/rss/search"

// googleRSSRepository is an implementation of NewsRepository backed by the
// Google News RSS search feed. The feed needs no API key but reports no
// total match count, so TotalResults is the parsed item count.
type googleRSSRepository struct {
	parser         *gofeed.Parser
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewGoogleRSSRepository creates a new Google News RSS article source.
func NewGoogleRSSRepository(log *logger.Logger, requestLimiter *rate.Limiter) NewsRepository {
	return &googleRSSRepository{
		parser:         gofeed.NewParser(),
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

// Search fetches and parses the Google News RSS feed for the query.
func (r *googleRSSRepository) Search(ctx context.Context, query string) (*dto.NewsSearchResult, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", googleNewsRSSBase, url.QueryEscape(query))
	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google news rss: %w", err)
	}

	articles := make([]dto.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		title, source := splitRSSTitle(item.Title)
		if title == "" {
			continue
		}

		publishedAt := item.Published
		if item.PublishedParsed != nil {
			publishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
		}

		articles = append(articles, dto.NewsArticle{
			Title:       title,
			Description: stripHTML(item.Description),
			Source:      dto.NewsSource{Name: source},
			URL:         item.Link,
			PublishedAt: publishedAt,
		})
	}

	return &dto.NewsSearchResult{
		TotalResults: len(articles),
		Articles:     articles,
	}, nil
}

// splitRSSTitle separates the " - Source Name" suffix Google News appends
// to every item title.
func splitRSSTitle(raw string) (title, source string) {
	if idx := strings.LastIndex(raw, " - "); idx > 0 {
		return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+3:])
	}
	return strings.TrimSpace(raw), "Google News"
}

// stripHTML extracts the text content of an RSS description fragment.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}
