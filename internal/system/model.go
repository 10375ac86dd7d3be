package system

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// System is a modeled data source or target. Domain and data-area
// associations are stored twice: in the typed array columns and embedded in
// the configuration blob, so configuration-only consumers keep working.
type System struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Category         string         `gorm:"size:100" json:"category"`
	Type             string         `gorm:"size:50;not null" json:"type"`
	Description      string         `gorm:"type:text" json:"description"`
	ConnectionString string         `gorm:"type:text;column:connection_string" json:"connection_string"`
	Configuration    datatypes.JSON `gorm:"type:jsonb" json:"configuration"`
	CanBeSource      *bool          `gorm:"default:true" json:"can_be_source"`
	CanBeTarget      *bool          `gorm:"default:true" json:"can_be_target"`
	ColorCode        string         `gorm:"size:20;default:'#6366f1'" json:"color_code"`
	DomainIDs        pq.Int64Array  `gorm:"type:bigint[];column:domain_ids" json:"domain_ids"`
	DataAreaIDs      pq.Int64Array  `gorm:"type:bigint[];column:data_area_ids" json:"data_area_ids"`
	DomainID         *int64         `gorm:"column:domain_id" json:"domain_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (System) TableName() string {
	return "systems"
}
