package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"datamodel-api/internal/modelgraph"
	"datamodel-api/internal/system"

	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&system.System{},
		&modelgraph.DataModelLayer{},
		&modelgraph.DataModelObject{},
		&modelgraph.Relationship{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestBuildModelWorkbook(t *testing.T) {
	db := newTestDB(t)
	models := &modelgraph.ModelService{DB: db}
	svc := &ExportService{DB: db, Models: models}

	sys := system.System{
		Name:      "warehouse",
		Type:      "postgresql",
		DomainIDs: pq.Int64Array{4},
	}
	if err := db.Create(&sys).Error; err != nil {
		t.Fatalf("seed system: %v", err)
	}

	layer, err := models.CreateLayer(modelgraph.LayerInput{Name: "logical", Level: 2})
	if err != nil {
		t.Fatalf("create layer: %v", err)
	}
	a, err := models.CreateObject(modelgraph.ObjectInput{ModelID: layer.ID, Name: "orders"})
	if err != nil {
		t.Fatalf("create object: %v", err)
	}
	b, err := models.CreateObject(modelgraph.ObjectInput{ModelID: layer.ID, Name: "customers"})
	if err != nil {
		t.Fatalf("create object: %v", err)
	}
	if _, err := models.CreateRelationship(modelgraph.RelationshipInput{
		ModelID:             layer.ID,
		SourceModelObjectID: a.ID,
		TargetModelObjectID: b.ID,
		Type:                modelgraph.RelTypeForeignKey,
	}); err != nil {
		t.Fatalf("create relationship: %v", err)
	}

	contentType, filename, data, err := svc.BuildModelWorkbook()
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("contentType=%q", contentType)
	}
	if filename != "data-model.xlsx" {
		t.Fatalf("filename=%q", filename)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Systems", "Layers", "Objects", "Relationships", "Orphans"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets=%v", sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Fatalf("sheet %d = %q want %q (all: %v)", i, sheets[i], name, sheets)
		}
	}

	name, err := f.GetCellValue("Systems", "B2")
	if err != nil || name != "warehouse" {
		t.Fatalf("Systems!B2=%q err=%v", name, err)
	}
	layerName, err := f.GetCellValue("Layers", "B2")
	if err != nil || layerName != "logical" {
		t.Fatalf("Layers!B2=%q err=%v", layerName, err)
	}
	objName, err := f.GetCellValue("Objects", "C2")
	if err != nil || objName != "orders" {
		t.Fatalf("Objects!C2=%q err=%v", objName, err)
	}
	relType, err := f.GetCellValue("Relationships", "E2")
	if err != nil || relType != modelgraph.RelTypeForeignKey {
		t.Fatalf("Relationships!E2=%q err=%v", relType, err)
	}
}

func TestBuildModelWorkbook_OrphansSheet(t *testing.T) {
	db := newTestDB(t)
	models := &modelgraph.ModelService{DB: db}
	svc := &ExportService{DB: db, Models: models}

	layer, err := models.CreateLayer(modelgraph.LayerInput{Name: "logical", Level: 2})
	if err != nil {
		t.Fatalf("create layer: %v", err)
	}
	obj, err := models.CreateObject(modelgraph.ObjectInput{ModelID: layer.ID, Name: "orders"})
	if err != nil {
		t.Fatalf("create object: %v", err)
	}

	// dangling row written around the service so it shows in the audit
	rel := modelgraph.Relationship{
		ModelID:             layer.ID,
		SourceModelObjectID: obj.ID,
		TargetModelObjectID: 999,
		Type:                modelgraph.RelTypeReference,
	}
	if err := db.Create(&rel).Error; err != nil {
		t.Fatalf("seed dangling relationship: %v", err)
	}

	_, _, data, err := svc.BuildModelWorkbook()
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	category, err := f.GetCellValue("Orphans", "A2")
	if err != nil || category != "missing_target" {
		t.Fatalf("Orphans!A2=%q err=%v", category, err)
	}
}
