package service

import (
	"fmt"
	"testing"

	"golang-overlord-pulse/internal/pulse/dto"

	"github.com/stretchr/testify/assert"
)

func validArticle(title string) dto.NewsArticle {
	return dto.NewsArticle{
		Title:       title,
		Description: "A description",
		URL:         "https://www.reuters.com/article",
		Source:      dto.NewsSource{Name: "Reuters"},
	}
}

func TestFilterArticles(t *testing.T) {
	t.Run("drops removed placeholders and empty fields", func(t *testing.T) {
		articles := []dto.NewsArticle{
			{Title: "[Removed]", Description: "x", URL: "https://reuters.com/a"},
			{Title: "x", Description: "[Removed]", URL: "https://reuters.com/b"},
			{Title: "", Description: "x", URL: "https://reuters.com/c"},
			{Title: "x", Description: "", URL: "https://reuters.com/d"},
			{Title: "x", Description: "x", URL: ""},
			validArticle("keeper"),
		}
		filtered := FilterArticles(articles)
		assert.Len(t, filtered, 1)
		assert.Equal(t, "keeper", filtered[0].Title)
	})

	t.Run("drops blocked domains including subdomains", func(t *testing.T) {
		blocked := []string{
			"https://biztoc.com/article",
			"https://www.yahoo.com/news/article",
			"https://finance.yahoo.com/article",
			"https://news.google.com/article",
		}
		for _, u := range blocked {
			articles := []dto.NewsArticle{{Title: "t", Description: "d", URL: u}}
			assert.Empty(t, FilterArticles(articles), "url %s should be blocked", u)
		}
	})

	t.Run("does not block lookalike domains", func(t *testing.T) {
		articles := []dto.NewsArticle{{Title: "t", Description: "d", URL: "https://notyahoo.com/article"}}
		assert.Len(t, FilterArticles(articles), 1)
	})

	t.Run("unparseable url is not treated as blocked", func(t *testing.T) {
		articles := []dto.NewsArticle{{Title: "t", Description: "d", URL: "not-a-real-url"}}
		assert.Len(t, FilterArticles(articles), 1)
	})

	t.Run("truncates to the first five survivors preserving order", func(t *testing.T) {
		var articles []dto.NewsArticle
		for i := 0; i < 8; i++ {
			articles = append(articles, validArticle(fmt.Sprintf("article-%d", i)))
		}
		filtered := FilterArticles(articles)
		assert.Len(t, filtered, 5)
		for i, a := range filtered {
			assert.Equal(t, fmt.Sprintf("article-%d", i), a.Title)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, FilterArticles(nil))
	})
}
