package system

type SystemServiceAPI interface {
	ListSystems(domainIDs, dataAreaIDs []int64) ([]FormValues, error)
	GetSystem(id int64) (FormValues, error)
	CreateSystem(fv FormValues) (FormValues, error)
	UpdateSystem(id int64, fv FormValues) (FormValues, error)
	DeleteSystem(id int64) error
}
