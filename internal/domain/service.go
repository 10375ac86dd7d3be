package domain

import (
	"gorm.io/gorm"
)

type DomainService struct {
	DB *gorm.DB
}

func (ds *DomainService) GetAllDomains() ([]Domain, error) {
	var domains []Domain
	result := ds.DB.Order("domain_name ASC").Find(&domains)
	if result.Error != nil {
		return nil, result.Error
	}
	return domains, nil
}

func (ds *DomainService) AddDomains(names []string) error {
	domainsToAdd := []Domain{}
	for _, name := range names {
		domainsToAdd = append(domainsToAdd, Domain{Name: name})
	}
	result := ds.DB.Create(&domainsToAdd)
	return result.Error
}

func (ds *DomainService) GetAllDataAreas() ([]DataArea, error) {
	var areas []DataArea
	result := ds.DB.Order("data_area_name ASC").Find(&areas)
	if result.Error != nil {
		return nil, result.Error
	}
	return areas, nil
}

func (ds *DomainService) GetDataAreasByDomain(domainID int64) ([]DataArea, error) {
	var areas []DataArea
	result := ds.DB.
		Where("domain_id = ?", domainID).
		Order("data_area_name ASC").
		Find(&areas)

	if result.Error != nil {
		return nil, result.Error
	}
	return areas, nil
}

func (ds *DomainService) AddDataAreas(names []string, domainID *int64) error {
	areasToAdd := []DataArea{}
	for _, name := range names {
		areasToAdd = append(areasToAdd, DataArea{Name: name, DomainID: domainID})
	}
	result := ds.DB.Create(&areasToAdd)
	return result.Error
}
