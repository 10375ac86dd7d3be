package domain

import (
	"time"
)

type Domain struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null;column:domain_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Domain) TableName() string {
	return "domains"
}

type DataArea struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null;column:data_area_name" json:"name"`
	DomainID  *int64    `gorm:"column:domain_id;index" json:"domain_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DataArea) TableName() string {
	return "data_areas"
}
