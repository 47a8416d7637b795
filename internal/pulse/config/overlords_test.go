package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverlord(t *testing.T) {
	for _, o := range Overlords {
		got, ok := GetOverlord(o.Key)
		require.True(t, ok, "key %s should resolve", o.Key)
		assert.Equal(t, o.Name, got.Name)
		assert.NotEmpty(t, got.SearchQuery)
		assert.NotEmpty(t, got.AccentColor)
	}

	_, ok := GetOverlord("nobody")
	assert.False(t, ok)
}

func TestDomainListsAreDisjoint(t *testing.T) {
	quality := make(map[string]bool, len(QualityDomains))
	for _, d := range QualityDomains {
		quality[d] = true
	}
	for _, d := range BlockedDomains {
		assert.False(t, quality[d], "domain %s is both allowed and blocked", d)
	}
}
