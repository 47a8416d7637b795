package entity

import (
	"time"

	"gorm.io/datatypes"
)

// PulseCache is the derived rolling-aggregate row for one overlord.
// It is a materialized view over pulse_snapshots: every field is fully
// recomputable and all writes go through the recalculation path.
type PulseCache struct {
	Overlord        string         `gorm:"primaryKey;type:varchar(50)" json:"overlord"`
	Pulse7Day       int            `gorm:"not null;default:0" json:"pulse_7day"`
	Pulse30Day      int            `gorm:"not null;default:0" json:"pulse_30day"`
	TrendPercent    float64        `gorm:"not null;default:0" json:"trend_percent"`
	TrendDirection  string         `gorm:"type:varchar(20);not null;default:'stable'" json:"trend_direction"`
	AvgSentiment7D  float64        `gorm:"column:avg_sentiment_7day;not null;default:0" json:"avg_sentiment_7day"`
	SentimentLabel  string         `gorm:"type:varchar(20);not null;default:'neutral'" json:"sentiment_label"`
	TopHeadlines    datatypes.JSON `gorm:"type:jsonb" json:"top_headlines"`
	PeakDay30D      *time.Time     `gorm:"column:peak_day_30d;type:date" json:"peak_day_30d,omitempty"`
	PeakCount30D    int            `gorm:"column:peak_count_30d;not null;default:0" json:"peak_count_30d"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the PulseCache model.
func (PulseCache) TableName() string {
	return "pulse_cache"
}
