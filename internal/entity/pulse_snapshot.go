package entity

import (
	"time"

	"gorm.io/datatypes"
)

// PulseSnapshot is one day's ingested news volume for one overlord.
// One row exists per (overlord, date); re-ingestion for the same day
// replaces the row rather than adding to it.
type PulseSnapshot struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Overlord       string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_pulse_snapshots_overlord_date" json:"overlord"`
	Date           time.Time      `gorm:"type:date;not null;uniqueIndex:idx_pulse_snapshots_overlord_date" json:"date"`
	ArticleCount   int            `gorm:"not null;default:0" json:"article_count"`
	SentimentScore float64        `gorm:"default:0" json:"sentiment_score"`
	TopHeadlines   datatypes.JSON `gorm:"type:jsonb" json:"top_headlines"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the PulseSnapshot model.
func (PulseSnapshot) TableName() string {
	return "pulse_snapshots"
}
