package system

import (
	"encoding/json"

	"datamodel-api/internal/util"
)

// FormValues is the editable shape the UI works with. Every optional field is
// filled with an explicit default on the read path so the form layer never
// observes a missing value.
type FormValues struct {
	ID               *int64                 `json:"id,omitempty"`
	Name             string                 `json:"name"`
	Category         string                 `json:"category"`
	Type             string                 `json:"type"`
	Description      string                 `json:"description"`
	ConnectionString string                 `json:"connectionString"`
	Configuration    map[string]interface{} `json:"configuration"`
	CanBeSource      *bool                  `json:"canBeSource"`
	CanBeTarget      *bool                  `json:"canBeTarget"`
	ColorCode        string                 `json:"colorCode"`
	DomainIDs        []int64                `json:"domainIds"`
	DataAreaIDs      []int64                `json:"dataAreaIds"`
	DomainID         *int64                 `json:"domainId,omitempty"`
}

// RequestBody is the persistence-bound shape. The id associations travel
// inside Configuration on the wire; the slice fields carry them to the typed
// array columns.
type RequestBody struct {
	Name             string                 `json:"name"`
	Category         string                 `json:"category"`
	Type             string                 `json:"type"`
	Description      string                 `json:"description"`
	ConnectionString string                 `json:"connectionString"`
	Configuration    map[string]interface{} `json:"configuration"`
	CanBeSource      bool                   `json:"canBeSource"`
	CanBeTarget      bool                   `json:"canBeTarget"`
	ColorCode        string                 `json:"colorCode"`
	DomainIDs        []int64                `json:"-"`
	DataAreaIDs      []int64                `json:"-"`
	DomainID         *int64                 `json:"-"`
}

// ToFormValues maps a persisted System into form values. Configuration
// defaults are recomputed on every load, so templates added after a system
// was created apply without touching explicit overrides.
func ToFormValues(s System) FormValues {
	cfg := decodeConfiguration(s.Configuration)

	domainIDs := util.NormalizeIDs([]int64(s.DomainIDs))
	if len(domainIDs) == 0 {
		domainIDs = util.NormalizeIDs(cfg["domainIds"])
	}

	dataAreaIDs := util.NormalizeIDs([]int64(s.DataAreaIDs))
	if len(dataAreaIDs) == 0 {
		dataAreaIDs = util.NormalizeIDs(cfg["dataAreaIds"])
	}

	// Primary domain is the first normalized id; a legacy single-value
	// domainId (column or configuration key) is only consulted when the
	// multi-valued field is absent.
	var domainID *int64
	if len(domainIDs) > 0 {
		first := domainIDs[0]
		domainID = &first
	} else if s.DomainID != nil {
		v := *s.DomainID
		domainID = &v
	} else if legacy := util.NormalizeIDs([]interface{}{cfg["domainId"]}); len(legacy) > 0 {
		v := legacy[0]
		domainID = &v
	}

	merged := MergeConfiguration(SystemType(s.Type), cfg)
	embedAssociations(merged, s.Type, domainIDs, dataAreaIDs, domainID)

	colorCode := s.ColorCode
	if colorCode == "" {
		colorCode = DefaultColorCode
	}

	id := s.ID
	return FormValues{
		ID:               &id,
		Name:             s.Name,
		Category:         s.Category,
		Type:             s.Type,
		Description:      s.Description,
		ConnectionString: s.ConnectionString,
		Configuration:    merged,
		CanBeSource:      boolPtr(s.CanBeSource == nil || *s.CanBeSource),
		CanBeTarget:      boolPtr(s.CanBeTarget == nil || *s.CanBeTarget),
		ColorCode:        colorCode,
		DomainIDs:        domainIDs,
		DataAreaIDs:      dataAreaIDs,
		DomainID:         domainID,
	}
}

// ToRequestBody maps submitted form values into a persistence request.
// domainIds falls back to a singleton built from domainId; the primary domain
// is always re-derived from the first element so the two never disagree.
func ToRequestBody(fv FormValues) RequestBody {
	domainIDs := util.NormalizeIDs(fv.DomainIDs)
	if len(domainIDs) == 0 && fv.DomainID != nil {
		if single := util.NormalizeIDs([]int64{*fv.DomainID}); len(single) > 0 {
			domainIDs = single
		}
	}

	dataAreaIDs := util.NormalizeIDs(fv.DataAreaIDs)

	var domainID *int64
	if len(domainIDs) > 0 {
		first := domainIDs[0]
		domainID = &first
	}

	merged := MergeConfiguration(SystemType(fv.Type), fv.Configuration)
	embedAssociations(merged, fv.Type, domainIDs, dataAreaIDs, domainID)

	colorCode := fv.ColorCode
	if colorCode == "" {
		colorCode = DefaultColorCode
	}

	return RequestBody{
		Name:             fv.Name,
		Category:         fv.Category,
		Type:             fv.Type,
		Description:      fv.Description,
		ConnectionString: fv.ConnectionString,
		Configuration:    merged,
		CanBeSource:      fv.CanBeSource == nil || *fv.CanBeSource,
		CanBeTarget:      fv.CanBeTarget == nil || *fv.CanBeTarget,
		ColorCode:        colorCode,
		DomainIDs:        domainIDs,
		DataAreaIDs:      dataAreaIDs,
		DomainID:         domainID,
	}
}

// embedAssociations writes the resolved association ids and type into the
// configuration blob. One adapter for both mapper directions, so the dual
// storage stays in a single place.
func embedAssociations(cfg map[string]interface{}, systemType string, domainIDs, dataAreaIDs []int64, domainID *int64) {
	cfg["type"] = systemType
	cfg["domainIds"] = domainIDs
	cfg["dataAreaIds"] = dataAreaIDs
	if domainID != nil {
		cfg["domainId"] = *domainID
	} else {
		delete(cfg, "domainId")
	}
}

func decodeConfiguration(raw []byte) map[string]interface{} {
	cfg := map[string]interface{}{}
	if len(raw) == 0 {
		return cfg
	}
	// Broken blobs degrade to an empty configuration, never to an error.
	_ = json.Unmarshal(raw, &cfg)
	return cfg
}

func boolPtr(b bool) *bool {
	return &b
}
