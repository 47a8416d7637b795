package entity

import (
	"time"

	"github.com/lib/pq"
)

// PulseJobLog is an append-only record of one pulse ingestion run.
// Rows are never updated or deleted.
type PulseJobLog struct {
	ID      uint           `gorm:"primaryKey" json:"id"`
	RanAt   time.Time      `gorm:"autoCreateTime" json:"ran_at"`
	Status  string         `gorm:"type:varchar(20);not null" json:"status"`
	Summary string         `gorm:"type:text" json:"summary"`
	Errors  pq.StringArray `gorm:"type:text[]" json:"errors"`
}

// TableName specifies the table name for the PulseJobLog model.
func (PulseJobLog) TableName() string {
	return "pulse_job_logs"
}
