package modelgraph

type ModelServiceAPI interface {
	GetAllLayers() ([]DataModelLayer, error)
	CreateLayer(input LayerInput) (DataModelLayer, error)
	UpdateLayer(id int64, input LayerInput) (DataModelLayer, error)
	DeleteLayer(id int64) error

	GetObjectsByLayer(layerID int64) ([]DataModelObject, error)
	GetObject(id int64) (DataModelObject, error)
	CreateObject(input ObjectInput) (DataModelObject, error)
	UpdateObject(id int64, input ObjectInput) (DataModelObject, error)
	DeleteObject(id int64) error

	GetRelationshipsByLayer(layerID int64) ([]Relationship, error)
	CreateRelationship(input RelationshipInput) (Relationship, error)
	UpdateRelationship(id int64, input RelationshipInput) (Relationship, error)
	DeleteRelationship(id int64) error

	FindOrphans(layerID *int64) (OrphanReport, error)
}
