package modelgraph

import (
	"time"
)

// DataModelLayer is a named partition of the overall model, e.g. the
// conceptual, logical or physical tier.
type DataModelLayer struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null;column:layer_name" json:"name"`
	Level       int       `gorm:"not null;default:0" json:"level"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (DataModelLayer) TableName() string {
	return "data_model_layers"
}

// DataModelObject is a node in one layer's graph. model_id never changes once
// set; relationships referencing the object depend on it staying put.
type DataModelObject struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ModelID     int64     `gorm:"not null;index;column:model_id" json:"model_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	ObjectType  string    `gorm:"size:50;column:object_type" json:"object_type"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (DataModelObject) TableName() string {
	return "data_model_objects"
}

// Relationship is a directed, typed edge between two objects of the same
// layer.
type Relationship struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ModelID             int64     `gorm:"not null;index;column:model_id" json:"model_id"`
	SourceModelObjectID int64     `gorm:"not null;index;column:source_model_object_id" json:"source_model_object_id"`
	TargetModelObjectID int64     `gorm:"not null;index;column:target_model_object_id" json:"target_model_object_id"`
	Type                string    `gorm:"size:50;not null;column:relationship_type" json:"type"`
	Description         string    `gorm:"type:text" json:"description"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Relationship) TableName() string {
	return "relationships"
}

// Recognized relationship types.
const (
	RelTypeForeignKey  = "foreign_key"
	RelTypeDerivation  = "derivation"
	RelTypeReference   = "reference"
	RelTypeComposition = "composition"
)

type ObjectInput struct {
	ModelID     int64  `json:"model_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	ObjectType  string `json:"object_type"`
	Description string `json:"description"`
}

type RelationshipInput struct {
	ModelID             int64  `json:"model_id" binding:"required"`
	SourceModelObjectID int64  `json:"source_model_object_id" binding:"required"`
	TargetModelObjectID int64  `json:"target_model_object_id" binding:"required"`
	Type                string `json:"type" binding:"required,oneof=foreign_key derivation reference composition"`
	Description         string `json:"description"`
}

type LayerInput struct {
	Name        string `json:"name" binding:"required"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// LayerCount is one row of the per-layer object/relationship tallies.
type LayerCount struct {
	ModelID   int64  `json:"model_id"`
	LayerName string `json:"layer_name" gorm:"column:layer_name"`
	Count     int64  `json:"count"`
}

// OrphanReport is the read-only consistency report over the graph: dangling
// endpoint references, cross-layer relationships, and per-layer counts.
type OrphanReport struct {
	MissingSource      []Relationship `json:"missing_source"`
	MissingTarget      []Relationship `json:"missing_target"`
	CrossLayer         []Relationship `json:"cross_layer"`
	RelationshipCounts []LayerCount   `json:"relationship_counts"`
	ObjectCounts       []LayerCount   `json:"object_counts"`
}
