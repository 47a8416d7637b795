package dto

// NewsSource identifies the outlet an article came from.
type NewsSource struct {
	Name string `json:"name"`
}

// NewsArticle is a transient article as returned by an article source.
// Articles are never persisted individually, only aggregated into snapshots.
type NewsArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Source      NewsSource `json:"source"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
}

// NewsSearchResult is one bounded page of search results plus the source's
// own total match count. TotalResults, not the page length, is the volume
// metric aggregated into snapshots.
type NewsSearchResult struct {
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}

// NewsAPIResponse is the wire format of the NewsAPI /v2/everything endpoint.
type NewsAPIResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}
