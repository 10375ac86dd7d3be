package modelgraph

import (
	"errors"

	"gorm.io/gorm"
)

type ModelService struct {
	DB *gorm.DB
}

// ---- layers ----

func (ms *ModelService) GetAllLayers() ([]DataModelLayer, error) {
	var layers []DataModelLayer
	result := ms.DB.Order("level ASC, id ASC").Find(&layers)
	if result.Error != nil {
		return nil, result.Error
	}
	return layers, nil
}

func (ms *ModelService) CreateLayer(input LayerInput) (DataModelLayer, error) {
	layer := DataModelLayer{
		Name:        input.Name,
		Level:       input.Level,
		Description: input.Description,
	}
	if err := ms.DB.Create(&layer).Error; err != nil {
		return DataModelLayer{}, err
	}
	return layer, nil
}

func (ms *ModelService) UpdateLayer(id int64, input LayerInput) (DataModelLayer, error) {
	var layer DataModelLayer
	if err := ms.DB.First(&layer, id).Error; err != nil {
		return DataModelLayer{}, err
	}

	layer.Name = input.Name
	layer.Level = input.Level
	layer.Description = input.Description
	if err := ms.DB.Save(&layer).Error; err != nil {
		return DataModelLayer{}, err
	}
	return layer, nil
}

// DeleteLayer refuses while objects remain in the layer; layers are not
// cascade-deleted.
func (ms *ModelService) DeleteLayer(id int64) error {
	return ms.DB.Transaction(func(tx *gorm.DB) error {
		var layer DataModelLayer
		if err := tx.First(&layer, id).Error; err != nil {
			return err
		}

		var objectCount int64
		if err := tx.Model(&DataModelObject{}).Where("model_id = ?", id).Count(&objectCount).Error; err != nil {
			return err
		}
		if objectCount > 0 {
			return ErrLayerNotEmpty
		}

		// No objects means any relationship left in the layer is already an
		// orphan; remove them with the layer.
		if err := tx.Where("model_id = ?", id).Delete(&Relationship{}).Error; err != nil {
			return err
		}
		return tx.Delete(&DataModelLayer{}, id).Error
	})
}

// ---- objects ----

func (ms *ModelService) GetObjectsByLayer(layerID int64) ([]DataModelObject, error) {
	var objects []DataModelObject
	result := ms.DB.Where("model_id = ?", layerID).Order("id ASC").Find(&objects)
	if result.Error != nil {
		return nil, result.Error
	}
	return objects, nil
}

func (ms *ModelService) GetObject(id int64) (DataModelObject, error) {
	var object DataModelObject
	if err := ms.DB.First(&object, id).Error; err != nil {
		return DataModelObject{}, err
	}
	return object, nil
}

func (ms *ModelService) CreateObject(input ObjectInput) (DataModelObject, error) {
	var object DataModelObject
	err := ms.DB.Transaction(func(tx *gorm.DB) error {
		var layer DataModelLayer
		if err := tx.First(&layer, input.ModelID).Error; err != nil {
			return err
		}

		object = DataModelObject{
			ModelID:     input.ModelID,
			Name:        input.Name,
			ObjectType:  input.ObjectType,
			Description: input.Description,
		}
		return tx.Create(&object).Error
	})
	if err != nil {
		return DataModelObject{}, err
	}
	return object, nil
}

func (ms *ModelService) UpdateObject(id int64, input ObjectInput) (DataModelObject, error) {
	var object DataModelObject
	err := ms.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&object, id).Error; err != nil {
			return err
		}

		if input.ModelID != 0 && input.ModelID != object.ModelID {
			return ErrObjectLayerImmutable
		}

		object.Name = input.Name
		object.ObjectType = input.ObjectType
		object.Description = input.Description
		return tx.Save(&object).Error
	})
	if err != nil {
		return DataModelObject{}, err
	}
	return object, nil
}

// DeleteObject cascade-deletes every relationship referencing the object in
// the same transaction, so no write can leave a dangling endpoint behind.
func (ms *ModelService) DeleteObject(id int64) error {
	return ms.DB.Transaction(func(tx *gorm.DB) error {
		var object DataModelObject
		if err := tx.First(&object, id).Error; err != nil {
			return err
		}

		if err := tx.
			Where("source_model_object_id = ? OR target_model_object_id = ?", id, id).
			Delete(&Relationship{}).Error; err != nil {
			return err
		}
		return tx.Delete(&DataModelObject{}, id).Error
	})
}

// ---- relationships ----

func (ms *ModelService) GetRelationshipsByLayer(layerID int64) ([]Relationship, error) {
	var rels []Relationship
	result := ms.DB.Where("model_id = ?", layerID).Order("id ASC").Find(&rels)
	if result.Error != nil {
		return nil, result.Error
	}
	return rels, nil
}

func (ms *ModelService) CreateRelationship(input RelationshipInput) (Relationship, error) {
	var rel Relationship
	err := ms.DB.Transaction(func(tx *gorm.DB) error {
		if err := checkEndpoints(tx, input.ModelID, input.SourceModelObjectID, input.TargetModelObjectID); err != nil {
			return err
		}

		rel = Relationship{
			ModelID:             input.ModelID,
			SourceModelObjectID: input.SourceModelObjectID,
			TargetModelObjectID: input.TargetModelObjectID,
			Type:                input.Type,
			Description:         input.Description,
		}
		return tx.Create(&rel).Error
	})
	if err != nil {
		return Relationship{}, err
	}
	return rel, nil
}

func (ms *ModelService) UpdateRelationship(id int64, input RelationshipInput) (Relationship, error) {
	var rel Relationship
	err := ms.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rel, id).Error; err != nil {
			return err
		}

		if err := checkEndpoints(tx, input.ModelID, input.SourceModelObjectID, input.TargetModelObjectID); err != nil {
			return err
		}

		rel.ModelID = input.ModelID
		rel.SourceModelObjectID = input.SourceModelObjectID
		rel.TargetModelObjectID = input.TargetModelObjectID
		rel.Type = input.Type
		rel.Description = input.Description
		return tx.Save(&rel).Error
	})
	if err != nil {
		return Relationship{}, err
	}
	return rel, nil
}

func (ms *ModelService) DeleteRelationship(id int64) error {
	result := ms.DB.Delete(&Relationship{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// checkEndpoints verifies both endpoints exist and live in the relationship's
// own layer. Runs inside the write transaction so the checks and the write
// see one snapshot.
func checkEndpoints(tx *gorm.DB, modelID, sourceID, targetID int64) error {
	for _, objectID := range []int64{sourceID, targetID} {
		var object DataModelObject
		if err := tx.First(&object, objectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &IntegrityError{Rule: MissingEndpoint, ObjectID: objectID, LayerID: modelID}
			}
			return err
		}
		if object.ModelID != modelID {
			return &IntegrityError{Rule: CrossLayerReference, ObjectID: objectID, LayerID: modelID}
		}
	}
	return nil
}
