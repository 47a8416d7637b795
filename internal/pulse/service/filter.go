package service

import (
	"net/url"
	"strings"

	"golang-overlord-pulse/internal/pulse/config"
	"golang-overlord-pulse/internal/pulse/dto"
)

// removedPlaceholder is what NewsAPI substitutes for withdrawn content.
const removedPlaceholder = "[Removed]"

// maxHeadlines bounds the surviving articles kept per snapshot. Upstream
// already sorts by relevancy, so the first survivors are the ones retained.
const maxHeadlines = 5

// FilterArticles drops junk articles (removed content, empty fields,
// blocked domains) and truncates the result to the first maxHeadlines
// survivors. Pure and order-preserving.
func FilterArticles(articles []dto.NewsArticle) []dto.NewsArticle {
	filtered := make([]dto.NewsArticle, 0, maxHeadlines)
	for _, a := range articles {
		if a.Title == "" || a.Title == removedPlaceholder {
			continue
		}
		if a.Description == "" || a.Description == removedPlaceholder {
			continue
		}
		if a.URL == "" {
			continue
		}
		if isBlockedDomain(a.URL) {
			continue
		}
		filtered = append(filtered, a)
		if len(filtered) == maxHeadlines {
			break
		}
	}
	return filtered
}

// isBlockedDomain reports whether the URL's host, with any leading "www."
// stripped, exactly matches or is a subdomain of a blocked domain.
// Unparseable URLs are not treated as blocked.
func isBlockedDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return false
	}
	hostname := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for _, domain := range config.BlockedDomains {
		if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
			return true
		}
	}
	return false
}
