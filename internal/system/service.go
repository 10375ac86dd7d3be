package system

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SystemService struct {
	DB *gorm.DB
}

// ListSystems returns all systems as form values, optionally filtered to
// those overlapping the given domain/data-area ids. Filtering happens after
// normalization so legacy configuration-only associations are honored too.
func (ss *SystemService) ListSystems(domainIDs, dataAreaIDs []int64) ([]FormValues, error) {
	var systems []System
	if err := ss.DB.Order("id asc").Find(&systems).Error; err != nil {
		return nil, err
	}

	out := make([]FormValues, 0, len(systems))
	for _, s := range systems {
		fv := ToFormValues(s)
		if len(domainIDs) > 0 && !overlaps(fv.DomainIDs, domainIDs) {
			continue
		}
		if len(dataAreaIDs) > 0 && !overlaps(fv.DataAreaIDs, dataAreaIDs) {
			continue
		}
		out = append(out, fv)
	}
	return out, nil
}

func (ss *SystemService) GetSystem(id int64) (FormValues, error) {
	var s System
	if err := ss.DB.First(&s, id).Error; err != nil {
		return FormValues{}, err
	}
	return ToFormValues(s), nil
}

func (ss *SystemService) CreateSystem(fv FormValues) (FormValues, error) {
	body := ToRequestBody(fv)

	s, err := applyRequestBody(System{}, body)
	if err != nil {
		return FormValues{}, err
	}
	if err := ss.DB.Create(&s).Error; err != nil {
		return FormValues{}, err
	}
	return ToFormValues(s), nil
}

func (ss *SystemService) UpdateSystem(id int64, fv FormValues) (FormValues, error) {
	var existing System
	if err := ss.DB.First(&existing, id).Error; err != nil {
		return FormValues{}, err
	}

	body := ToRequestBody(fv)
	s, err := applyRequestBody(existing, body)
	if err != nil {
		return FormValues{}, err
	}
	if err := ss.DB.Save(&s).Error; err != nil {
		return FormValues{}, err
	}
	return ToFormValues(s), nil
}

func (ss *SystemService) DeleteSystem(id int64) error {
	result := ss.DB.Delete(&System{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// applyRequestBody writes a mapped request body onto a System row. The merged
// configuration replaces the stored blob wholesale; the embedded association
// copies were already put there by the mapper.
func applyRequestBody(s System, body RequestBody) (System, error) {
	cfgJSON, err := json.Marshal(body.Configuration)
	if err != nil {
		return System{}, err
	}

	canBeSource := body.CanBeSource
	canBeTarget := body.CanBeTarget

	s.Name = body.Name
	s.Category = body.Category
	s.Type = body.Type
	s.Description = body.Description
	s.ConnectionString = body.ConnectionString
	s.Configuration = cfgJSON
	s.CanBeSource = &canBeSource
	s.CanBeTarget = &canBeTarget
	s.ColorCode = body.ColorCode
	s.DomainIDs = pq.Int64Array(body.DomainIDs)
	s.DataAreaIDs = pq.Int64Array(body.DataAreaIDs)
	s.DomainID = body.DomainID
	return s, nil
}

func overlaps(a, b []int64) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
