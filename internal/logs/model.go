package logs

import (
	"time"
)

type ActivityLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Level      string    `gorm:"size:20;not null" json:"level"`
	Service    string    `gorm:"size:100;not null" json:"service"`
	UserID     *uint     `gorm:"index" json:"user_id,omitempty"`
	Action     string    `gorm:"size:255;not null" json:"action"`
	EntityType string    `gorm:"size:50;column:entity_type" json:"entity_type"`
	EntityID   *int64    `gorm:"column:entity_id" json:"entity_id,omitempty"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Metadata   *string   `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

type LogFilterInput struct {
	UserID     *uint   `json:"user_id"`
	Level      *string `json:"level"`
	Service    *string `json:"service"`
	Action     *string `json:"action"`
	EntityType *string `json:"entity_type"`
	EntityID   *int64  `json:"entity_id"`

	StartDate *string `json:"start_date"` // "YYYY-MM-DD"
	EndDate   *string `json:"end_date"`   // "YYYY-MM-DD"

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type AggItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type LogAggregates struct {
	ByAction     []AggItem `json:"by_action"`
	ByEntityType []AggItem `json:"by_entity_type"`
}
