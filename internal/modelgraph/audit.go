package modelgraph

import (
	"gorm.io/gorm"
)

// FindOrphans builds the read-only consistency report: relationships whose
// source or target no longer resolves, relationships whose endpoints live in
// another layer, and per-layer object/relationship counts. Runs outside any
// write transaction; a slightly stale snapshot is acceptable for a
// diagnostic.
func (ms *ModelService) FindOrphans(layerID *int64) (OrphanReport, error) {
	report := OrphanReport{
		MissingSource:      []Relationship{},
		MissingTarget:      []Relationship{},
		CrossLayer:         []Relationship{},
		RelationshipCounts: []LayerCount{},
		ObjectCounts:       []LayerCount{},
	}

	scoped := func(q *gorm.DB) *gorm.DB {
		if layerID != nil {
			return q.Where("relationships.model_id = ?", *layerID)
		}
		return q
	}

	// 1) missing source
	if err := scoped(ms.DB.Table("relationships").
		Select("relationships.*").
		Joins("LEFT JOIN data_model_objects src ON src.id = relationships.source_model_object_id").
		Where("src.id IS NULL")).
		Order("relationships.id ASC").
		Scan(&report.MissingSource).Error; err != nil {
		return OrphanReport{}, err
	}

	// 2) missing target
	if err := scoped(ms.DB.Table("relationships").
		Select("relationships.*").
		Joins("LEFT JOIN data_model_objects tgt ON tgt.id = relationships.target_model_object_id").
		Where("tgt.id IS NULL")).
		Order("relationships.id ASC").
		Scan(&report.MissingTarget).Error; err != nil {
		return OrphanReport{}, err
	}

	// 3) cross-layer: both endpoints resolve, at least one in another layer
	if err := scoped(ms.DB.Table("relationships").
		Select("relationships.*").
		Joins("JOIN data_model_objects src ON src.id = relationships.source_model_object_id").
		Joins("JOIN data_model_objects tgt ON tgt.id = relationships.target_model_object_id").
		Where("src.model_id <> relationships.model_id OR tgt.model_id <> relationships.model_id")).
		Order("relationships.id ASC").
		Scan(&report.CrossLayer).Error; err != nil {
		return OrphanReport{}, err
	}

	// 4) relationship counts per layer
	relCounts := ms.DB.Table("relationships").
		Select("relationships.model_id AS model_id, COALESCE(l.layer_name, '') AS layer_name, COUNT(*) AS count").
		Joins("LEFT JOIN data_model_layers l ON l.id = relationships.model_id").
		Group("relationships.model_id, l.layer_name").
		Order("relationships.model_id ASC")
	if err := scoped(relCounts).Scan(&report.RelationshipCounts).Error; err != nil {
		return OrphanReport{}, err
	}

	// 5) object counts per layer
	objCounts := ms.DB.Table("data_model_objects").
		Select("data_model_objects.model_id AS model_id, COALESCE(l.layer_name, '') AS layer_name, COUNT(*) AS count").
		Joins("LEFT JOIN data_model_layers l ON l.id = data_model_objects.model_id").
		Group("data_model_objects.model_id, l.layer_name").
		Order("data_model_objects.model_id ASC")
	if layerID != nil {
		objCounts = objCounts.Where("data_model_objects.model_id = ?", *layerID)
	}
	if err := objCounts.Scan(&report.ObjectCounts).Error; err != nil {
		return OrphanReport{}, err
	}

	return report, nil
}
