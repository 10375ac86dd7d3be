package export

import (
	"fmt"
	"strings"

	"datamodel-api/internal/modelgraph"
	"datamodel-api/internal/system"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ExportService struct {
	DB     *gorm.DB
	Models *modelgraph.ModelService
}

// BuildModelWorkbook renders the whole model into one xlsx workbook: systems
// (normalized through the record mapper), layers, objects, relationships and
// the orphan audit report.
func (es *ExportService) BuildModelWorkbook() (string, string, []byte, error) {
	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	// 1) systems
	var systems []system.System
	if err := es.DB.Order("id asc").Find(&systems).Error; err != nil {
		return "", "", nil, err
	}

	f.SetSheetName(f.GetSheetName(0), "Systems")
	_ = f.SetSheetRow("Systems", "A1", &[]interface{}{
		"id", "name", "category", "type", "description", "can_be_source", "can_be_target", "color_code", "domain_ids", "data_area_ids",
	})
	for i, s := range systems {
		fv := system.ToFormValues(s)
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow("Systems", cell, &[]interface{}{
			s.ID, fv.Name, fv.Category, fv.Type, fv.Description,
			*fv.CanBeSource, *fv.CanBeTarget, fv.ColorCode,
			joinIDs(fv.DomainIDs), joinIDs(fv.DataAreaIDs),
		})
	}
	_ = f.SetCellStyle("Systems", "A1", "J1", headerStyle)

	// 2) layers
	layers, err := es.Models.GetAllLayers()
	if err != nil {
		return "", "", nil, err
	}
	_, _ = f.NewSheet("Layers")
	_ = f.SetSheetRow("Layers", "A1", &[]interface{}{"id", "name", "level", "description"})
	for i, l := range layers {
		_ = f.SetSheetRow("Layers", fmt.Sprintf("A%d", i+2), &[]interface{}{l.ID, l.Name, l.Level, l.Description})
	}
	_ = f.SetCellStyle("Layers", "A1", "D1", headerStyle)

	// 3) objects and 4) relationships, layer by layer
	_, _ = f.NewSheet("Objects")
	_ = f.SetSheetRow("Objects", "A1", &[]interface{}{"id", "layer_id", "name", "object_type", "description"})
	_, _ = f.NewSheet("Relationships")
	_ = f.SetSheetRow("Relationships", "A1", &[]interface{}{"id", "layer_id", "source_object_id", "target_object_id", "type", "description"})

	objRow := 2
	relRow := 2
	for _, l := range layers {
		objects, err := es.Models.GetObjectsByLayer(l.ID)
		if err != nil {
			return "", "", nil, err
		}
		for _, o := range objects {
			_ = f.SetSheetRow("Objects", fmt.Sprintf("A%d", objRow), &[]interface{}{o.ID, o.ModelID, o.Name, o.ObjectType, o.Description})
			objRow++
		}

		rels, err := es.Models.GetRelationshipsByLayer(l.ID)
		if err != nil {
			return "", "", nil, err
		}
		for _, r := range rels {
			_ = f.SetSheetRow("Relationships", fmt.Sprintf("A%d", relRow), &[]interface{}{r.ID, r.ModelID, r.SourceModelObjectID, r.TargetModelObjectID, r.Type, r.Description})
			relRow++
		}
	}
	_ = f.SetCellStyle("Objects", "A1", "E1", headerStyle)
	_ = f.SetCellStyle("Relationships", "A1", "F1", headerStyle)

	// 5) orphan audit
	report, err := es.Models.FindOrphans(nil)
	if err != nil {
		return "", "", nil, err
	}
	_, _ = f.NewSheet("Orphans")
	_ = f.SetSheetRow("Orphans", "A1", &[]interface{}{"category", "relationship_id", "layer_id", "source_object_id", "target_object_id", "type"})
	row := 2
	writeOrphans := func(category string, rels []modelgraph.Relationship) {
		for _, r := range rels {
			_ = f.SetSheetRow("Orphans", fmt.Sprintf("A%d", row), &[]interface{}{category, r.ID, r.ModelID, r.SourceModelObjectID, r.TargetModelObjectID, r.Type})
			row++
		}
	}
	writeOrphans("missing_source", report.MissingSource)
	writeOrphans("missing_target", report.MissingTarget)
	writeOrphans("cross_layer", report.CrossLayer)
	_ = f.SetCellStyle("Orphans", "A1", "F1", headerStyle)

	b, err := f.WriteToBuffer()
	if err != nil {
		return "", "", nil, err
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "data-model.xlsx", b.Bytes(), nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ",")
}
